// Package walleterrors defines the closed set of error kinds shared by the
// wallet, wallet provider, issuer and verifier (spec §7), rendered as
// Problem+JSON over HTTP.
package walleterrors

import (
	"fmt"

	"github.com/moogar0880/problems"
)

// Kind is one of the closed set of error kinds cross-cutting the engine.
type Kind string

const (
	KindNotRegistered               Kind = "NOT_REGISTERED"
	KindLocked                      Kind = "LOCKED"
	KindVersionBlocked              Kind = "VERSION_BLOCKED"
	KindInstructionValidation       Kind = "INSTRUCTION_VALIDATION"
	KindSequenceMismatch            Kind = "SEQUENCE_MISMATCH"
	KindAttestationInvalid          Kind = "ATTESTATION_INVALID"
	KindChallengeMismatch           Kind = "CHALLENGE_MISMATCH"
	KindPinKeyInvalid               Kind = "PIN_KEY_INVALID"
	KindIncorrectPin                Kind = "INCORRECT_PIN"
	KindPinTimeout                  Kind = "PIN_TIMEOUT"
	KindAccountBlocked              Kind = "ACCOUNT_BLOCKED"
	KindNetwork                     Kind = "NETWORK"
	KindServer                      Kind = "SERVER"
	KindSessionExpired              Kind = "SESSION_EXPIRED"
	KindUnexpectedState             Kind = "UNEXPECTED_STATE"
	KindAttestationVerificationFail Kind = "ATTESTATION_VERIFICATION_FAILED"
	KindStatusListUnavailable       Kind = "STATUS_LIST_UNAVAILABLE"
	KindRevoked                     Kind = "REVOKED"

	// Registration-only failure taxonomy (spec §4.1)
	KindChallengeExpired          Kind = "CHALLENGE_EXPIRED"
	KindNonceMismatch              Kind = "NONCE_MISMATCH"
	KindSequenceNumberExpectedZero Kind = "SEQUENCE_NUMBER_EXPECTED_ZERO"
	KindPinKeyVerificationFailed   Kind = "PIN_KEY_VERIFICATION_FAILED"

	// PoA / disclosure specific
	KindUnexpectedSignatureCount Kind = "UNEXPECTED_SIGNATURE_COUNT"

	// KindKeyNotFound is returned when an instruction references a
	// key_identifier the WP has no generated key stored under.
	KindKeyNotFound Kind = "KEY_NOT_FOUND"
)

// Error carries a Kind plus optional structured detail, and renders as
// Problem+JSON, the way pkg/helpers.Error does for the rest of the stack.
type Error struct {
	Kind   Kind `json:"kind"`
	Detail any  `json:"detail,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail != nil {
		return fmt.Sprintf("%s: %+v", e.Kind, e.Detail)
	}
	return string(e.Kind)
}

// New creates an Error of the given kind with no detail.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// WithDetail creates an Error of the given kind carrying structured detail.
func WithDetail(kind Kind, detail any) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// IncorrectPinDetail is the detail payload of KindIncorrectPin (spec §4.2).
type IncorrectPinDetail struct {
	AttemptsLeftInRound int  `json:"attempts_left_in_round"`
	IsFinalRound        bool `json:"is_final_round"`
}

// PinTimeoutDetail is the detail payload of KindPinTimeout (spec §4.2).
type PinTimeoutDetail struct {
	TimeLeftSeconds int64 `json:"time_left_seconds"`
}

// Problem converts an Error into the Problem+JSON shape used on the wire
// (spec §6), following the teacher's use of github.com/moogar0880/problems.
func (e *Error) Problem(status int) *problems.DefaultProblem {
	p := problems.NewDetailedProblem(status, string(e.Kind))
	p.Title = string(e.Kind)
	if e.Detail != nil {
		p.Detail = fmt.Sprintf("%+v", e.Detail)
	}
	return p
}

// ProblemType maps a Kind to the closed `type` set from spec §6.
func ProblemType(k Kind) string {
	switch k {
	case KindChallengeExpired, KindNonceMismatch, KindAttestationInvalid, KindSequenceNumberExpectedZero, KindPinKeyVerificationFailed:
		return "ChallengeValidation"
	case KindIncorrectPin:
		return "IncorrectPin"
	case KindPinTimeout:
		return "PinTimeout"
	case KindAccountBlocked:
		return "AccountBlocked"
	case KindInstructionValidation, KindSequenceMismatch, KindChallengeMismatch, KindPinKeyInvalid:
		return "InstructionValidation"
	case KindServer, KindNetwork:
		return "ServerError"
	default:
		return "InstructionResult"
	}
}
