package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"career-path-be/internal/dto"
	"career-path-be/internal/pkg/logger"
	"career-path-be/internal/repository/memory"
	"career-path-be/pkg/guidance/format"
	"career-path-be/pkg/guidance/search"
	"career-path-be/pkg/guidance/source"
	"career-path-be/pkg/knowledge"
	"career-path-be/pkg/llm"
	"career-path-be/pkg/llm/rewrite"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

func testKnowledgeBase() *knowledge.Base {
	noDegree := false
	return knowledge.NewBase(
		[]*knowledge.Career{
			{
				ID:            "career:chartered_accountant",
				DisplayName:   "Chartered Accountant",
				Stream:        "commerce",
				Variant:       "accountancy",
				EntryPaths:    []string{"course:bcom"},
				ExamsRequired: []string{"ca_foundation"},
				Skills:        []string{"Accounting"},
				Roadmap: &knowledge.Roadmap{
					ShortTerm: "Clear CA Foundation",
					MidTerm:   "Clear CA Intermediate",
					LongTerm:  "Clear CA Final",
				},
				Attributes: knowledge.CareerAttributes{
					MinimumEducation: "12th pass (Commerce preferred)",
					DegreeRequired:   &noDegree,
				},
			},
			{
				ID:          "career:doctor",
				DisplayName: "Doctor",
				Description: "Treats patients; many job options in hospitals",
				Stream:      "science",
				Variant:     "pcb",
				EntryPaths:  []string{"course:mbbs"},
				Skills:      []string{"Biology"},
				Roadmap: &knowledge.Roadmap{
					ShortTerm: "Clear NEET",
					MidTerm:   "Complete MBBS",
					LongTerm:  "Specialize",
				},
			},
		},
		[]*knowledge.Stream{
			{ID: "stream:science", DisplayName: "Science", Description: "PCM/PCB subjects"},
			{ID: "stream:commerce", DisplayName: "Commerce", Description: "Business subjects"},
		},
		[]*knowledge.Exam{
			{ID: "exam:neet", DisplayName: "NEET", Description: "Medical entrance", Difficulty: "High"},
		},
		[]*knowledge.Course{
			{ID: "course:mbbs", DisplayName: "MBBS", Description: "Medical degree", DurationYears: 5.5},
		},
		nil,
		[]*knowledge.ClassLevel{
			{ID: "education:class_10", Streams: []string{"stream:science", "stream:commerce"}},
		},
	)
}

func newTestService(t *testing.T, rewriter *rewrite.Rewriter) IChatbotService {
	kb := testKnowledgeBase()
	repo := memory.NewSessionRepository(30*time.Minute, time.Minute)
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "chatbot-test.log"))
	return NewChatbotService(repo, source.New(kb), search.New(kb), rewriter, nil, log)
}

func TestAskEligibility(t *testing.T) {
	svc := newTestService(t, nil)

	resp, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "Am I eligible for CA?"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, format.TypeCareerCard, resp.Type)
	assert.Equal(t, "eligibility_check", resp.Intent)
	assert.Equal(t, 1.0, resp.Confidence)
	assert.Equal(t, "APP_DATA_ONLY", resp.Source)
	assert.True(t, resp.Verified)
	assert.True(t, resp.Metadata.DataAvailable)
	assert.False(t, resp.Metadata.GPTEnhanced)
	assert.Equal(t, "chartered_accountant", resp.Metadata.Entities.Career)
	assert.Contains(t, resp.Answer, "Eligibility for Chartered Accountant")
	assert.Contains(t, resp.Answer, "12th pass (Commerce preferred)")
}

func TestAskUsesSessionCareerMemory(t *testing.T) {
	svc := newTestService(t, nil)

	first, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "Am I eligible for CA?"})
	assert.NoError(t, err)

	// The follow-up names no career; session memory fills the slot.
	second, err := svc.Ask(context.Background(), &dto.AskRequest{
		SessionID: first.SessionID,
		Question:  "Show me the roadmap",
	})
	assert.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, "roadmap", second.Intent)
	assert.Equal(t, "APP_DATA_GPT_EXPLAIN", second.Source)
	assert.Contains(t, second.Answer, "Career Roadmap: Chartered Accountant")
	assert.False(t, second.Metadata.GPTEnhanced) // no rewriter wired
}

func TestAskMissingStreamClarification(t *testing.T) {
	svc := newTestService(t, nil)

	first, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "I want to become a doctor"})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeClarification, first.Type)
	assert.Equal(t, "clarification", first.Intent)
	assert.Len(t, first.Metadata.ClarificationOptions, 3)

	// Answering the prompt re-runs the original question.
	second, err := svc.Ask(context.Background(), &dto.AskRequest{
		SessionID: first.SessionID,
		Question:  "science",
	})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeCareerCard, second.Type)
	assert.Equal(t, "career_steps", second.Intent)
	assert.Equal(t, "doctor", second.Metadata.Entities.Career)
	assert.Contains(t, second.Answer, "How to become a Doctor")
}

func TestAskVagueClarificationRetryThenGiveUp(t *testing.T) {
	svc := newTestService(t, nil)

	first, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "What next"})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeClarification, first.Type)
	assert.Len(t, first.Metadata.ClarificationOptions, 4)

	// An unresolvable reply re-issues the same prompt once.
	retry, err := svc.Ask(context.Background(), &dto.AskRequest{
		SessionID: first.SessionID,
		Question:  "zzz",
	})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeClarification, retry.Type)

	// The second miss abandons the prompt and classifies the literal reply.
	gaveUp, err := svc.Ask(context.Background(), &dto.AskRequest{
		SessionID: first.SessionID,
		Question:  "zzz",
	})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeGeneric, gaveUp.Type)
	assert.Equal(t, "FALLBACK_GENERIC", gaveUp.Source)
}

func TestAskLowConfidenceFallsBack(t *testing.T) {
	svc := newTestService(t, nil)

	resp, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeGeneric, resp.Type)
	assert.Equal(t, "FALLBACK_GENERIC", resp.Source)
	assert.False(t, resp.Metadata.DataAvailable)
	assert.True(t, resp.Verified)
}

func TestAskWeakClassificationRoutesToSearch(t *testing.T) {
	svc := newTestService(t, nil)

	resp, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "job options"})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeSearchResults, resp.Type)
	assert.Equal(t, "search", resp.Intent)
	assert.Equal(t, 0.8, resp.Confidence)
	assert.Contains(t, resp.Answer, "Doctor")
}

func TestAskRewriteApplied(t *testing.T) {
	rewriter := rewrite.New(&stubProvider{reply: "Here's a friendly version."}, time.Second, nil)
	svc := newTestService(t, rewriter)

	resp, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "roadmap for doctor"})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeCareerCard, resp.Type)
	assert.True(t, resp.Metadata.GPTEnhanced)
	assert.Equal(t, "Here's a friendly version.", resp.Answer)
	assert.True(t, resp.Verified)
}

func TestAskRewriteFailureKeepsVerifiedAnswer(t *testing.T) {
	rewriter := rewrite.New(&stubProvider{err: errors.New("provider down")}, time.Second, nil)
	svc := newTestService(t, rewriter)

	resp, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "roadmap for doctor"})
	assert.NoError(t, err)
	assert.False(t, resp.Metadata.GPTEnhanced)
	assert.Contains(t, resp.Answer, "Career Roadmap: Doctor")
	assert.Contains(t, resp.Answer, "Clear NEET")
}

func TestAskEligibilityOnlyAnswerNeverRewritten(t *testing.T) {
	// Even with a live rewriter, APP_DATA_ONLY answers stay untouched.
	rewriter := rewrite.New(&stubProvider{reply: "should never appear"}, time.Second, nil)
	svc := newTestService(t, rewriter)

	resp, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "Am I eligible for CA?"})
	assert.NoError(t, err)
	assert.False(t, resp.Metadata.GPTEnhanced)
	assert.NotContains(t, resp.Answer, "should never appear")
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestService(t, nil)

	created := svc.CreateSession(context.Background())
	assert.NotEmpty(t, created.ID)

	resp, err := svc.Ask(context.Background(), &dto.AskRequest{
		SessionID: created.ID,
		Question:  "Am I eligible for CA?",
	})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, resp.SessionID)

	assert.True(t, svc.EndSession(context.Background(), created.ID))
	assert.False(t, svc.EndSession(context.Background(), created.ID))
}

func TestAskMultipleCareersClarifies(t *testing.T) {
	svc := newTestService(t, nil)

	first, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "I want to be a doctor or an engineer"})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeClarification, first.Type)
	assert.Len(t, first.Metadata.ClarificationOptions, 2)
	assert.Equal(t, "doctor", first.Metadata.ClarificationOptions[0].ID)

	// Picking one career re-runs the original question with that career.
	second, err := svc.Ask(context.Background(), &dto.AskRequest{
		SessionID: first.SessionID,
		Question:  "doctor",
	})
	assert.NoError(t, err)
	assert.Equal(t, "career_steps", second.Intent)
	assert.Equal(t, "doctor", second.Metadata.Entities.Career)
	assert.Contains(t, second.Answer, "How to become a Doctor")
}

func TestAskUnknownCareerFallsBackByKind(t *testing.T) {
	svc := newTestService(t, nil)

	// "lawyer" classifies cleanly but has no record and no search hits.
	resp, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "Am I eligible for lawyer?"})
	assert.NoError(t, err)
	assert.Equal(t, format.TypeError, resp.Type)
	assert.Equal(t, "FALLBACK_GENERIC", resp.Source)
	assert.False(t, resp.Metadata.DataAvailable)
	assert.Contains(t, resp.Answer, "alternative paths")
}

func TestSessionLockSweep(t *testing.T) {
	svc := newTestService(t, nil).(*chatbotService)

	resp, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "hello"})
	assert.NoError(t, err)

	v, ok := svc.sessionMu.Load(resp.SessionID)
	assert.True(t, ok)

	// A recently used lock survives the sweep; an hour-idle one does not.
	svc.sweepSessionLocks(time.Hour)
	_, ok = svc.sessionMu.Load(resp.SessionID)
	assert.True(t, ok)

	v.(*sessionLock).lastUsed.Store(time.Now().Add(-2 * time.Hour).UnixNano())
	svc.sweepSessionLocks(time.Hour)
	_, ok = svc.sessionMu.Load(resp.SessionID)
	assert.False(t, ok)
}
