package util

import "errors"

var (
	ErrPfeNotFound           = errors.New("pfe not found")
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrTechnicalTestNotFound = errors.New("technical test not found")
	ErrTestAlreadyCompleted  = errors.New("this test has already been completed")
	ErrNoAnswersProvided     = errors.New("no answers provided")
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
	ErrOfferNotFound         = errors.New("internship offer not found")
	ErrInterestNotFound      = errors.New("student interest not found")
	ErrPfeAlreadySaved       = errors.New("pfe is already saved by this company")
	ErrNotProposalOwner      = errors.New("proposal does not belong to this company")
	ErrOnlyPDFAllowed        = errors.New("only PDF files are allowed")
	ErrEmailRecipientMissing = errors.New("email recipient cannot be empty")
	ErrInterviewTimeInPast   = errors.New("interview date/time cannot be in the past")
)
