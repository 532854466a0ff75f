package services

import (
	"errors"
	"fmt"
)

// Kind classifies a Code for the transport layer.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindConflict
	KindForbidden
	KindUnauthorized
)

// Code is a stable machine-readable failure identifier.
type Code string

const (
	CodeGroupNotFound        Code = "GROUP_NOT_FOUND"
	CodeUserNotFound         Code = "USER_NOT_FOUND"
	CodeMatchNotFound        Code = "MATCH_NOT_FOUND"
	CodeRegistrationNotFound Code = "REGISTRATION_NOT_FOUND"
	CodeNoInvitationFound    Code = "NO_INVITATION_FOUND"

	CodeGroupNameAlreadyExists Code = "GROUP_NAME_ALREADY_EXISTS"
	CodeUsernameAlreadyExists  Code = "USERNAME_ALREADY_EXISTS"
	CodeUserAlreadyInGroup     Code = "USER_ALREADY_IN_GROUP"
	CodeAlreadyProcessed       Code = "ALREADY_PROCESSED"
	CodeAlreadyJoined          Code = "ALREADY_JOINED"

	CodeInsufficientPermissions           Code = "INSUFFICIENT_PERMISSIONS"
	CodeNotAGroupMember                   Code = "NOT_A_GROUP_MEMBER"
	CodeOnlyOwnerCanEditMetadata          Code = "ONLY_OWNER_CAN_EDIT_METADATA"
	CodeOnlyOldestOwnerCanDemoteOwners    Code = "ONLY_OLDEST_OWNER_CAN_DEMOTE_OWNERS"
	CodeOnlyOldestOwnerCanDeactivateGroup Code = "ONLY_OLDEST_OWNER_CAN_DEACTIVATE_GROUP"
	CodeUserInactive                      Code = "USER_INACTIVE"
	CodeMatchLocked                       Code = "MATCH_LOCKED"

	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"

	CodeRequiredFieldMissing Code = "REQUIRED_FIELD_MISSING"
	CodeInvalidRole          Code = "INVALID_ROLE"
	CodeInvalidStatus        Code = "INVALID_STATUS"
	CodeInvalidTransition    Code = "INVALID_TRANSITION"
	CodeInvalidAttitude      Code = "INVALID_ATTITUDE"
	CodeInvalidSport         Code = "INVALID_SPORT"
	CodeInvalidCapacity      Code = "INVALID_CAPACITY"
	CodeInvalidDuration      Code = "INVALID_DURATION"
	CodeInvalidColor         Code = "INVALID_COLOR"
	CodeInvalidEmailFormat   Code = "INVALID_EMAIL_FORMAT"
	CodeInvalidMeritConfig   Code = "INVALID_MERIT_CONFIG"
	CodeMinimumOwnerRequired Code = "MINIMUM_OWNER_REQUIRED"
	CodeMatchNotPlanning     Code = "MATCH_NOT_PLANNING"
	CodeMatchNotFinished     Code = "MATCH_NOT_FINISHED"
	CodeNotRegistered        Code = "NOT_REGISTERED"
)

var codeKinds = map[Code]Kind{
	CodeGroupNotFound:        KindNotFound,
	CodeUserNotFound:         KindNotFound,
	CodeMatchNotFound:        KindNotFound,
	CodeRegistrationNotFound: KindNotFound,
	CodeNoInvitationFound:    KindNotFound,

	CodeGroupNameAlreadyExists: KindConflict,
	CodeUsernameAlreadyExists:  KindConflict,
	CodeUserAlreadyInGroup:     KindConflict,
	CodeAlreadyProcessed:       KindConflict,
	CodeAlreadyJoined:          KindConflict,

	CodeInsufficientPermissions:           KindForbidden,
	CodeNotAGroupMember:                   KindForbidden,
	CodeOnlyOwnerCanEditMetadata:          KindForbidden,
	CodeOnlyOldestOwnerCanDemoteOwners:    KindForbidden,
	CodeOnlyOldestOwnerCanDeactivateGroup: KindForbidden,
	CodeUserInactive:                      KindForbidden,
	CodeMatchLocked:                       KindForbidden,

	CodeInvalidCredentials: KindUnauthorized,
}

// Kind returns the class of the code; unknown codes are bad requests.
func (c Code) Kind() Kind {
	if k, ok := codeKinds[c]; ok {
		return k
	}
	return KindBadRequest
}

// Error is the failure value returned by every use-case. Two errors are
// equal under errors.Is when their codes match, so callers can compare
// against the package sentinels even when the message was customised.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func (e *Error) Kind() Kind {
	return e.Code.Kind()
}

// withDetail returns a copy of the sentinel carrying a request-specific message.
func (e *Error) withDetail(format string, args ...any) *Error {
	return &Error{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// AsError extracts the typed failure from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

var (
	ErrGroupNotFound        = newError(CodeGroupNotFound, "group not found")
	ErrUserNotFound         = newError(CodeUserNotFound, "user not found")
	ErrMatchNotFound        = newError(CodeMatchNotFound, "match not found")
	ErrRegistrationNotFound = newError(CodeRegistrationNotFound, "registration not found")
	ErrNoInvitationFound    = newError(CodeNoInvitationFound, "no invitation found")

	ErrGroupNameAlreadyExists = newError(CodeGroupNameAlreadyExists, "group name already exists")
	ErrUsernameAlreadyExists  = newError(CodeUsernameAlreadyExists, "username already exists")
	ErrUserAlreadyInGroup     = newError(CodeUserAlreadyInGroup, "user is already in the group")
	ErrAlreadyProcessed       = newError(CodeAlreadyProcessed, "invitation already processed")
	ErrAlreadyJoined          = newError(CodeAlreadyJoined, "user already joined the match")

	ErrInsufficientPermissions           = newError(CodeInsufficientPermissions, "insufficient permissions")
	ErrNotAGroupMember                   = newError(CodeNotAGroupMember, "user is not a member of the group")
	ErrOnlyOwnerCanEditMetadata          = newError(CodeOnlyOwnerCanEditMetadata, "only an owner can edit group metadata")
	ErrOnlyOldestOwnerCanDemoteOwners    = newError(CodeOnlyOldestOwnerCanDemoteOwners, "only the senior owner can demote owners")
	ErrOnlyOldestOwnerCanDeactivateGroup = newError(CodeOnlyOldestOwnerCanDeactivateGroup, "only the senior owner can deactivate the group")
	ErrUserInactive                      = newError(CodeUserInactive, "user is inactive")
	ErrMatchLocked                       = newError(CodeMatchLocked, "match is locked")

	ErrInvalidCredentials = newError(CodeInvalidCredentials, "invalid username or password")

	ErrRequiredFieldMissing = newError(CodeRequiredFieldMissing, "required field missing")
	ErrInvalidRole          = newError(CodeInvalidRole, "invalid role")
	ErrInvalidStatus        = newError(CodeInvalidStatus, "invalid status")
	ErrInvalidTransition    = newError(CodeInvalidTransition, "invalid status transition")
	ErrInvalidAttitude      = newError(CodeInvalidAttitude, "invalid attitude")
	ErrInvalidSport         = newError(CodeInvalidSport, "invalid sport")
	ErrInvalidCapacity      = newError(CodeInvalidCapacity, "capacity must be positive")
	ErrInvalidDuration      = newError(CodeInvalidDuration, "duration must be positive")
	ErrInvalidColor         = newError(CodeInvalidColor, "color channels must be within [0,1]")
	ErrInvalidEmailFormat   = newError(CodeInvalidEmailFormat, "invalid email format")
	ErrInvalidMeritConfig   = newError(CodeInvalidMeritConfig, "invalid merit configuration")
	ErrMinimumOwnerRequired = newError(CodeMinimumOwnerRequired, "group must keep at least one accepted owner")
	ErrMatchNotPlanning     = newError(CodeMatchNotPlanning, "match is not in planning")
	ErrMatchNotFinished     = newError(CodeMatchNotFinished, "match is not finished")
	ErrNotRegistered        = newError(CodeNotRegistered, "user is not registered for the match")
)
