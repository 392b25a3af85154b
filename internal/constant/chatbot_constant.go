package constant

const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"

	// Module names used for structured logging.
	ModuleChatbot   = "chatbot"
	ModuleAnalytics = "analytics"
	ModuleSession   = "session"

	// Stream guidance defaults to Class 10 when no level was extracted.
	DefaultClassLevel = "10"

	// A failed clarification reply is re-prompted once; the second miss falls
	// through to normal classification of the literal reply.
	ClarifyMaxRetries = 1

	// Pre-pipeline comprehensive search fires below this confidence when the
	// question carries a search keyword.
	SearchConfidenceCeiling = 0.7

	IntentClarification = "clarification"
	IntentSearch        = "search"
	SearchConfidence    = 0.8
)
