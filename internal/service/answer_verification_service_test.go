package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyAcceptsTrueVerdict(t *testing.T) {
	chat := &stubChat{replies: []string{"true"}}
	svc := NewAnswerVerificationService(chat)

	assert.True(t, svc.Verify(context.Background(), "LIFO order", "last in first out", "stack order?"))
}

func TestVerifyNormalizesVerdictCasing(t *testing.T) {
	chat := &stubChat{replies: []string{"  TRUE \n"}}
	svc := NewAnswerVerificationService(chat)

	assert.True(t, svc.Verify(context.Background(), "ref", "ans", "q?"))
}

func TestVerifyRejectsFalseVerdict(t *testing.T) {
	chat := &stubChat{replies: []string{"false"}}
	svc := NewAnswerVerificationService(chat)

	assert.False(t, svc.Verify(context.Background(), "ref", "wrong", "q?"))
}

func TestVerifyTreatsUnexpectedVerdictAsIncorrect(t *testing.T) {
	chat := &stubChat{replies: []string{"the answer is mostly correct"}}
	svc := NewAnswerVerificationService(chat)

	assert.False(t, svc.Verify(context.Background(), "ref", "ans", "q?"))
}

func TestVerifyGivesBenefitOfTheDoubtOnFailure(t *testing.T) {
	chat := &stubChat{err: errors.New("timeout")}
	svc := NewAnswerVerificationService(chat)

	assert.True(t, svc.Verify(context.Background(), "ref", "anything", "q?"))
}
