// FILE: internal/service/chatbot_service.go
package service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"career-path-be/internal/constant"
	"career-path-be/internal/dto"
	"career-path-be/internal/pkg/logger"
	"career-path-be/pkg/analytics"
	"career-path-be/pkg/guidance/clarify"
	"career-path-be/pkg/guidance/decision"
	"career-path-be/pkg/guidance/format"
	"career-path-be/pkg/guidance/intent"
	"career-path-be/pkg/guidance/search"
	"career-path-be/pkg/guidance/session"
	"career-path-be/pkg/guidance/source"
	"career-path-be/pkg/llm/rewrite"
)

type IChatbotService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
	CreateSession(ctx context.Context) *dto.CreateSessionResponse
	EndSession(ctx context.Context, sessionID string) bool
}

// Lock entries outlive their sessions when the store evicts by TTL, so every
// lockSweepEvery turns the entries idle past lockIdleAfter are dropped. The
// idle window comfortably exceeds any configured session timeout, meaning a
// swept entry can have no holder or waiter left.
const (
	lockSweepEvery = 256
	lockIdleAfter  = time.Hour
)

type sessionLock struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // unix nanos of the last lockSession call
}

type chatbotService struct {
	sessions  session.Repository
	source    *source.AnswerSource
	searcher  *search.Searcher
	rewriter  *rewrite.Rewriter
	events    *analytics.Publisher
	log       logger.ILogger
	sessionMu sync.Map // session id -> *sessionLock
	turns     atomic.Uint64
}

func NewChatbotService(
	sessions session.Repository,
	answerSource *source.AnswerSource,
	searcher *search.Searcher,
	rewriter *rewrite.Rewriter,
	events *analytics.Publisher,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		sessions: sessions,
		source:   answerSource,
		searcher: searcher,
		rewriter: rewriter,
		events:   events,
		log:      log,
	}
}

// lockSession serializes turns per session id so concurrent turns for the
// same conversation never observe partial writes.
func (s *chatbotService) lockSession(sessionID string) *sync.Mutex {
	v, _ := s.sessionMu.LoadOrStore(sessionID, &sessionLock{})
	lock := v.(*sessionLock)
	lock.lastUsed.Store(time.Now().UnixNano())

	if s.turns.Add(1)%lockSweepEvery == 0 {
		s.sweepSessionLocks(lockIdleAfter)
	}
	return &lock.mu
}

// sweepSessionLocks drops lock entries untouched for longer than idleAfter.
func (s *chatbotService) sweepSessionLocks(idleAfter time.Duration) {
	cutoff := time.Now().Add(-idleAfter).UnixNano()
	s.sessionMu.Range(func(key, value interface{}) bool {
		if value.(*sessionLock).lastUsed.Load() < cutoff {
			s.sessionMu.Delete(key)
		}
		return true
	})
}

func (s *chatbotService) CreateSession(_ context.Context) *dto.CreateSessionResponse {
	sess := session.New()
	s.sessions.Save(sess)
	s.events.Emit(analytics.EventSessionStarted, "", nil)
	return &dto.CreateSessionResponse{ID: sess.ID}
}

func (s *chatbotService) EndSession(_ context.Context, sessionID string) bool {
	mu := s.lockSession(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, found := s.sessions.Get(sessionID)
	if !found {
		return false
	}

	s.sessions.Delete(sessionID)
	s.sessionMu.Delete(sessionID)
	s.events.Emit(analytics.EventSessionEnded, "", map[string]interface{}{
		"duration_minutes": int(time.Since(sess.CreatedAt).Minutes()),
		"interactions":     sess.InteractionCount,
	})
	return true
}

func (s *chatbotService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = session.New().ID
	}

	mu := s.lockSession(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, found := s.sessions.Get(sessionID)
	if !found {
		// Unknown or expired id: start fresh under the same id so the
		// client's handle keeps working.
		sess = session.New()
		sess.ID = sessionID
		s.log.Info(constant.ModuleSession, "starting fresh session context", map[string]interface{}{
			"session_id": sessionID,
		})
		s.events.Emit(analytics.EventSessionStarted, "", nil)
	}

	resp := s.runTurn(ctx, sess, req.Question)
	resp.SessionID = sess.ID
	s.sessions.Save(sess)
	return resp, nil
}

// runTurn executes the full pipeline for one question against a borrowed
// session context. The caller holds the session lock and saves afterwards.
func (s *chatbotService) runTurn(ctx context.Context, sess *session.Context, question string) *dto.AskResponse {
	var forced *intent.Result

	// An outstanding clarification intercepts the raw reply before anything
	// else happens this turn.
	if sess.AwaitingClarification && sess.Clarification != nil {
		resolvedQuestion, forcedResult, prompt := s.resolveClarification(sess, question)
		if prompt != nil {
			return s.clarificationResponse(sess, prompt, question)
		}
		if resolvedQuestion != "" {
			question = resolvedQuestion
		}
		forced = forcedResult
	}

	if forced == nil {
		// A question naming several careers needs the user to pick one before
		// entity extraction can do anything sensible with it.
		if matches := intent.CareerMatches(question); len(matches) > 1 && sess.CurrentCareer == "" {
			prompt := clarify.ForMultipleCareers(matches)
			sess.SetClarificationPending(prompt, question)
			s.events.Emit(analytics.EventClarificationTriggered, "", map[string]interface{}{
				"reason": string(clarify.MultipleCareer),
			})
			return s.clarificationResponse(sess, prompt, question)
		}

		if ambiguous, kind := clarify.Detect(question, sess.CurrentCareer, sess.CurrentStream); ambiguous {
			prompt := clarify.ForKind(kind)
			sess.SetClarificationPending(prompt, question)
			s.events.Emit(analytics.EventClarificationTriggered, "", map[string]interface{}{
				"reason": string(kind),
			})
			return s.clarificationResponse(sess, prompt, question)
		}
	}

	var result intent.Result
	if forced != nil {
		result = *forced
	} else {
		result = intent.Classify(question)
	}
	dec := decision.Decide(result)

	s.events.Emit(analytics.EventChatbotQuery, "", map[string]interface{}{
		"intent":      string(result.Intent),
		"had_context": sess.CurrentCareer != "" || sess.CurrentStream != "",
	})

	// Lookup-style questions with weak classification go through the
	// comprehensive search before the normal pipeline.
	if search.LooksLikeSearch(question) && result.Confidence < constant.SearchConfidenceCeiling {
		if results := s.searcher.Comprehensive(question); results.Total > 0 {
			return s.finishTurn(sess, question, result, format.SearchResults(results), string(decision.AppDataOnly), true)
		}
	}

	formatted, available := s.answer(sess, result, dec)

	if !available && dec.Source != decision.FallbackGeneric {
		s.log.Warn(constant.ModuleChatbot, "no verified data for classified question", map[string]interface{}{
			"intent": string(result.Intent),
			"career": result.Entities.Career,
		})
		s.events.Emit(analytics.EventDataMiss, result.Entities.Career, map[string]interface{}{
			"intent": string(result.Intent),
		})
		if results := s.searcher.Comprehensive(question); results.Total > 0 {
			return s.finishTurn(sess, question, result, format.SearchResults(results), string(decision.AppDataOnly), true)
		}
		formatted = format.Response{
			Type:   format.TypeError,
			Answer: format.FallbackFor(fallbackKind(result.Intent)),
		}
	}

	// Cosmetic rewrite, facts frozen. Only career cards are eligible and any
	// failure leaves the assembled answer byte-identical.
	if dec.AllowGPTExplain && s.rewriter != nil && formatted.Type == format.TypeCareerCard {
		rewritten, applied := s.rewriter.Rewrite(ctx, formatted.Answer)
		formatted.Answer = rewritten
		formatted.GPTEnhanced = applied
		if applied {
			s.events.Emit(analytics.EventRewriteApplied, result.Entities.Career, nil)
		} else {
			s.events.Emit(analytics.EventRewriteFailed, result.Entities.Career, nil)
		}
	}

	// A turn without verified data behind it must not report a data-backed
	// source, whatever the decision originally allowed.
	src := dec.Source
	if !available {
		src = decision.FallbackGeneric
	}
	return s.finishTurn(sess, question, result, formatted, string(src), available)
}

// fallbackKind picks the fallback catalogue entry for an intent family.
func fallbackKind(it intent.Intent) string {
	switch it {
	case intent.EligibilityCheck, intent.CareerSteps, intent.CareerSkills,
		intent.FailurePaths, intent.CareerOverview, intent.Roadmap:
		return "career"
	case intent.ExamInfo:
		return "exam"
	case intent.StreamGuidance:
		return "stream"
	default:
		return ""
	}
}

// answer fetches and formats the verified data for a classified question.
// The second return reports whether verified data backed the answer.
func (s *chatbotService) answer(sess *session.Context, result intent.Result, dec decision.Decision) (format.Response, bool) {
	if dec.Source == decision.FallbackGeneric {
		return format.Fallback(), false
	}

	// Session memory fills a career slot the query itself left empty.
	career := result.Entities.Career
	if career == "" {
		career = sess.CurrentCareer
	}

	switch result.Intent {
	case intent.EligibilityCheck:
		if career == "" {
			return format.Fallback(), false
		}
		data := s.source.CareerEligibility(career)
		s.emitCareerViewed(career, data.Available)
		return format.Eligibility(data), data.Available

	case intent.CareerSteps, intent.CareerSkills, intent.FailurePaths, intent.CareerOverview:
		if career == "" {
			return format.Fallback(), false
		}
		data := s.source.CareerStepPlan(career)
		s.emitCareerViewed(career, data.Available)
		return format.CareerSteps(data), data.Available

	case intent.Roadmap:
		if career == "" {
			return format.Fallback(), false
		}
		data := s.source.CareerRoadmap(career)
		s.emitCareerViewed(career, data.Available)
		return format.Roadmap(data, dec.AllowGPTExplain), data.Available

	case intent.StreamGuidance:
		classLevel := result.Entities.ClassLevel
		if classLevel == "" {
			classLevel = constant.DefaultClassLevel
		}
		data := s.source.StreamsForClass(classLevel)
		if data.Available && result.Entities.Stream != "" {
			s.events.Emit(analytics.EventStreamSelected, result.Entities.Stream, nil)
		}
		return format.StreamGuidance(data), data.Available

	case intent.ExamInfo:
		if result.Entities.Exam == "" {
			return format.Fallback(), false
		}
		data := s.source.ExamInfo(result.Entities.Exam)
		if data.Available {
			s.events.Emit(analytics.EventExamQueried, result.Entities.Exam, nil)
		}
		return format.ExamInfo(data), data.Available

	case intent.CourseInfo:
		if result.Entities.Course == "" {
			return format.Fallback(), false
		}
		data := s.source.CourseInfo(result.Entities.Course)
		return format.CourseInfo(data), data.Available

	default:
		return format.Fallback(), false
	}
}

// resolveClarification applies the resolution rules to the user's reply.
// It returns either a question to re-run (with an optional forced
// classification), or the prompt to re-issue when the reply stayed
// unresolved and a retry is still allowed.
func (s *chatbotService) resolveClarification(sess *session.Context, reply string) (string, *intent.Result, *clarify.Prompt) {
	prompt := sess.Clarification
	pending := sess.PendingQuestion

	id, ok := clarify.Resolve(reply, prompt.Options)
	if !ok {
		if sess.ClarifyRetries < constant.ClarifyMaxRetries {
			sess.ClarifyRetries++
			return "", nil, prompt
		}
		// Second miss: give up on the prompt and classify the literal reply.
		sess.ClearClarification()
		return reply, nil, nil
	}

	s.events.Emit(analytics.EventClarificationResolved, "", map[string]interface{}{
		"resolution": id,
	})

	kind := prompt.Kind
	sess.ClearClarification()

	switch kind {
	case clarify.MissingStream:
		sess.CurrentStream = id
		return pending, nil, nil

	case clarify.MissingContext, clarify.MultipleCareer:
		sess.CurrentCareer = id
		if kind == clarify.MultipleCareer {
			// The pending question names several careers; the chosen one must
			// override whatever extraction would pick first.
			res := intent.Classify(pending)
			res.Entities.Career = id
			return pending, &res, nil
		}
		return pending, nil, nil

	default: // vague intent: the chosen option picks the intent for the pending question
		entities := intent.Extract(strings.ToLower(pending))
		if entities.Career == "" {
			entities.Career = sess.CurrentCareer
		}
		forced := &intent.Result{
			Intent:     vagueOptionIntent(id),
			Entities:   entities,
			Confidence: 1.0,
		}
		return pending, forced, nil
	}
}

// vagueOptionIntent maps a vague-intent clarification choice to the intent
// that answers it.
func vagueOptionIntent(optionID string) intent.Intent {
	switch optionID {
	case "eligibility":
		return intent.EligibilityCheck
	case "exam_preparation":
		return intent.ExamInfo
	case "career_roadmap":
		return intent.Roadmap
	case "salary":
		return intent.CareerSteps
	default:
		return intent.GeneralGuidance
	}
}

func (s *chatbotService) clarificationResponse(sess *session.Context, prompt *clarify.Prompt, question string) *dto.AskResponse {
	sess.AddHistory(constant.ChatRoleUser, question, intent.EntitySet{})
	sess.AddHistory(constant.ChatRoleBot, prompt.Message, intent.EntitySet{})

	return &dto.AskResponse{
		Answer:     prompt.Message,
		Type:       format.TypeClarification,
		Intent:     constant.IntentClarification,
		Confidence: 1.0,
		Source:     string(decision.AppDataOnly),
		Verified:   true,
		Metadata: dto.AskMetadata{
			ClarificationOptions: prompt.Options,
		},
	}
}

// finishTurn records history, refreshes session memory and assembles the
// turn response.
func (s *chatbotService) finishTurn(
	sess *session.Context,
	question string,
	result intent.Result,
	formatted format.Response,
	sourcePolicy string,
	dataAvailable bool,
) *dto.AskResponse {
	sess.AddHistory(constant.ChatRoleUser, question, result.Entities)
	sess.AddHistory(constant.ChatRoleBot, formatted.Answer, intent.EntitySet{})
	sess.Remember(result.Entities.Stream, result.Entities.Career, result.Intent)

	respIntent := string(result.Intent)
	confidence := result.Confidence
	if formatted.Type == format.TypeSearchResults {
		respIntent = constant.IntentSearch
		confidence = constant.SearchConfidence
	}

	return &dto.AskResponse{
		Answer:     formatted.Answer,
		Type:       formatted.Type,
		Intent:     respIntent,
		Confidence: confidence,
		Source:     sourcePolicy,
		Verified:   true,
		Metadata: dto.AskMetadata{
			GPTEnhanced:   formatted.GPTEnhanced,
			DataAvailable: dataAvailable,
			Entities:      result.Entities,
		},
	}
}

func (s *chatbotService) emitCareerViewed(career string, available bool) {
	if available {
		s.events.Emit(analytics.EventCareerViewed, career, nil)
	}
}
