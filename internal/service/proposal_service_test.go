package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pfe_service/internal/model"
	"pfe_service/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProposalStore struct {
	byID    map[uint]*model.Proposal
	nextID  uint
	updates int
}

func newFakeProposalStore() *fakeProposalStore {
	return &fakeProposalStore{byID: make(map[uint]*model.Proposal)}
}

func (f *fakeProposalStore) Create(p *model.Proposal) error {
	f.nextID++
	p.ID = f.nextID
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProposalStore) FindByID(id uint) (*model.Proposal, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProposalStore) List() ([]model.Proposal, error)                { return nil, nil }
func (f *fakeProposalStore) ListByCompany(string) ([]model.Proposal, error) { return nil, nil }
func (f *fakeProposalStore) ListByStudent(string) ([]model.Proposal, error) { return nil, nil }
func (f *fakeProposalStore) ListByPfe(uint) ([]model.Proposal, error)       { return nil, nil }

func (f *fakeProposalStore) Update(p *model.Proposal) error {
	f.updates++
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProposalStore) Delete(id uint) error {
	delete(f.byID, id)
	return nil
}

type fakePfeFinder struct {
	pfe *model.Pfe
}

func (f *fakePfeFinder) FindByID(uint) (*model.Pfe, error) {
	if f.pfe == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.pfe, nil
}

type fakeTestCreator struct {
	test  *model.TechnicalTest
	err   error
	calls int
}

func (f *fakeTestCreator) CreateForProposal(context.Context, *model.Proposal) (*model.TechnicalTest, error) {
	f.calls++
	return f.test, f.err
}

type fakeInvitationSender struct {
	err   error
	to    string
	calls int
}

func (f *fakeInvitationSender) SendInterviewInvitation(to string, _ time.Time, _ string) error {
	f.calls++
	f.to = to
	return f.err
}

func proposalFixture() (*fakeProposalStore, *fakePfeFinder) {
	pfe := &model.Pfe{Title: "Smart Campus Platform"}
	pfe.ID = 10
	return newFakeProposalStore(), &fakePfeFinder{pfe: pfe}
}

func TestCreateProposalStartsPending(t *testing.T) {
	store, pfes := proposalFixture()
	svc := NewProposalService(store, pfes, &fakeTestCreator{}, &fakeInvitationSender{})

	proposal, err := svc.Create(&ProposalCreateRequest{
		StudentID: "student-1",
		CompanyID: "company-1",
		PfeID:     10,
		Message:   "interested in your project",
	})
	require.NoError(t, err)

	assert.Equal(t, model.ProposalPending, proposal.Status)
	assert.Equal(t, uint(10), proposal.PfeID)
	assert.Nil(t, proposal.RespondedAt)
}

func TestCreateProposalRejectsMissingPfe(t *testing.T) {
	store := newFakeProposalStore()
	svc := NewProposalService(store, &fakePfeFinder{}, &fakeTestCreator{}, &fakeInvitationSender{})

	_, err := svc.Create(&ProposalCreateRequest{StudentID: "s", CompanyID: "c", PfeID: 99})
	assert.ErrorIs(t, err, util.ErrPfeNotFound)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	store, pfes := proposalFixture()
	svc := NewProposalService(store, pfes, &fakeTestCreator{}, &fakeInvitationSender{})

	_, _, err := svc.SetStatus(context.Background(), 1, "ARCHIVED")
	assert.ErrorIs(t, err, util.ErrInvalidProposalStatus)
}

func TestSetStatusAcceptedCreatesTest(t *testing.T) {
	store, pfes := proposalFixture()
	creator := &fakeTestCreator{test: &model.TechnicalTest{Title: "Technical Test for Smart Campus Platform"}}
	svc := NewProposalService(store, pfes, creator, &fakeInvitationSender{})

	created, err := svc.Create(&ProposalCreateRequest{StudentID: "s", CompanyID: "c", PfeID: 10})
	require.NoError(t, err)

	proposal, test, err := svc.SetStatus(context.Background(), created.ID, "accepted")
	require.NoError(t, err)

	assert.Equal(t, model.ProposalAccepted, proposal.Status)
	assert.NotNil(t, proposal.RespondedAt)
	assert.Equal(t, 1, creator.calls)
	require.NotNil(t, test)
	assert.Equal(t, "Technical Test for Smart Campus Platform", test.Title)
}

func TestSetStatusDeclinedSkipsTestCreation(t *testing.T) {
	store, pfes := proposalFixture()
	creator := &fakeTestCreator{}
	svc := NewProposalService(store, pfes, creator, &fakeInvitationSender{})

	created, err := svc.Create(&ProposalCreateRequest{StudentID: "s", CompanyID: "c", PfeID: 10})
	require.NoError(t, err)

	proposal, test, err := svc.SetStatus(context.Background(), created.ID, "DECLINED")
	require.NoError(t, err)

	assert.Equal(t, model.ProposalDeclined, proposal.Status)
	assert.Nil(t, test)
	assert.Equal(t, 0, creator.calls)
}

func TestAcceptAndCreateTestIsIdempotent(t *testing.T) {
	store, pfes := proposalFixture()
	creator := &fakeTestCreator{}
	svc := NewProposalService(store, pfes, creator, &fakeInvitationSender{})

	created, err := svc.Create(&ProposalCreateRequest{StudentID: "s", CompanyID: "c", PfeID: 10})
	require.NoError(t, err)

	existing := &model.TechnicalTest{ProposalID: created.ID}
	existing.ID = 5
	created.Status = model.ProposalAccepted
	created.TechnicalTest = existing

	_, test, err := svc.AcceptAndCreateTest(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, uint(5), test.ID)
	assert.Equal(t, 0, creator.calls)
}

func TestSendInterviewInvitationChecksOwnership(t *testing.T) {
	store, pfes := proposalFixture()
	sender := &fakeInvitationSender{}
	svc := NewProposalService(store, pfes, &fakeTestCreator{}, sender)

	created, err := svc.Create(&ProposalCreateRequest{StudentID: "s", CompanyID: "company-1", PfeID: 10})
	require.NoError(t, err)

	err = svc.SendInterviewInvitation(context.Background(), created.ID, "another-company", &InterviewRequest{
		StudentEmail:      "student@example.com",
		InterviewDateTime: time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, util.ErrNotProposalOwner)
	assert.Equal(t, 0, sender.calls)
}

func TestSendInterviewInvitationAbortsOnEmailFailure(t *testing.T) {
	store, pfes := proposalFixture()
	sender := &fakeInvitationSender{err: errors.New("smtp down")}
	svc := NewProposalService(store, pfes, &fakeTestCreator{}, sender)

	created, err := svc.Create(&ProposalCreateRequest{StudentID: "s", CompanyID: "company-1", PfeID: 10})
	require.NoError(t, err)

	err = svc.SendInterviewInvitation(context.Background(), created.ID, "company-1", &InterviewRequest{
		StudentEmail:      "student@example.com",
		InterviewDateTime: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)

	// 邮件失败不得改变提案状态
	stored, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ProposalPending, stored.Status)
}

func TestSendInterviewInvitationSchedulesMeeting(t *testing.T) {
	store, pfes := proposalFixture()
	sender := &fakeInvitationSender{}
	svc := NewProposalService(store, pfes, &fakeTestCreator{}, sender)

	created, err := svc.Create(&ProposalCreateRequest{StudentID: "s", CompanyID: "company-1", PfeID: 10})
	require.NoError(t, err)

	err = svc.SendInterviewInvitation(context.Background(), created.ID, "company-1", &InterviewRequest{
		StudentEmail:      "student@example.com",
		InterviewDateTime: time.Now().Add(24 * time.Hour),
		Message:           "see you soon",
	})
	require.NoError(t, err)

	assert.Equal(t, "student@example.com", sender.to)
	stored, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ProposalMeetingScheduled, stored.Status)
}

// 接受提案到提交测试的完整链路，提案、测试与判卷服务真实串联
func TestAcceptThenSubmitFlow(t *testing.T) {
	proposalStore := newFakeProposalStore()
	pfe := &model.Pfe{
		Title:        "Smart Campus Platform",
		Description:  "IoT dashboard",
		Technologies: model.TechnologyList{model.TechJava},
	}
	pfe.ID = 10
	pfes := &fakePfeFinder{pfe: pfe}

	testStore := newFakeTestStore()
	generator := &fakeGenerator{questions: []model.Question{
		{Text: "mcq", IsMultipleChoice: true, Options: model.StringList{"a", "b", "c", "d"}, CorrectAnswer: "a", Points: 3},
		{Text: "open", CorrectAnswer: "LIFO", Points: 2},
	}}
	verifier := &fakeVerifier{verdict: true}
	testSvc := NewTechnicalTestService(testStore, generator, verifier)
	proposalSvc := NewProposalService(proposalStore, pfes, testSvc, &fakeInvitationSender{})

	created, err := proposalSvc.Create(&ProposalCreateRequest{StudentID: "s", CompanyID: "c", PfeID: 10})
	require.NoError(t, err)

	_, test, err := proposalSvc.SetStatus(context.Background(), created.ID, "ACCEPTED")
	require.NoError(t, err)
	require.NotNil(t, test)

	for i := range test.Questions {
		test.Questions[i].ID = uint(i + 1)
	}

	result, err := testSvc.Submit(context.Background(), &TestSubmissionRequest{
		TechnicalTestID: test.ID,
		Answers: []QuestionAnswer{
			{QuestionID: 1, Answer: "a"},
			{QuestionID: 2, Answer: "last in first out"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)

	// 完成后重复提交被拒
	_, err = testSvc.Submit(context.Background(), &TestSubmissionRequest{
		TechnicalTestID: test.ID,
		Answers:         []QuestionAnswer{{QuestionID: 1, Answer: "a"}},
	})
	assert.ErrorIs(t, err, util.ErrTestAlreadyCompleted)
}

func TestDeleteProposalRequiresExistence(t *testing.T) {
	store, pfes := proposalFixture()
	svc := NewProposalService(store, pfes, &fakeTestCreator{}, &fakeInvitationSender{})

	assert.ErrorIs(t, svc.Delete(99), util.ErrProposalNotFound)
}
