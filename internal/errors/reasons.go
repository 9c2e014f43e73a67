package errors

import (
	"errors"
	"fmt"
)

// Reason is a stable, machine-readable cause attached to an Error.
// The Code answers "what kind of failure", the Reason answers "which game rule".
type Reason string

// Game rule reasons
const (
	ReasonNone                   Reason = ""
	ReasonCapacityExceeded       Reason = "CAPACITY_EXCEEDED"
	ReasonItemNotFound           Reason = "ITEM_NOT_FOUND"
	ReasonTargetNotFound         Reason = "TARGET_NOT_FOUND"
	ReasonSlotOccupied           Reason = "SLOT_OCCUPIED"
	ReasonSlotEmpty              Reason = "SLOT_EMPTY"
	ReasonQuestSlotsFull         Reason = "QUEST_SLOTS_FULL"
	ReasonInsufficientStamina    Reason = "INSUFFICIENT_STAMINA"
	ReasonInvalidDirection       Reason = "INVALID_DIRECTION"
	ReasonInsufficientSkillLevel Reason = "INSUFFICIENT_SKILL_LEVEL"
	ReasonUnknownRecipe          Reason = "UNKNOWN_RECIPE"
	ReasonMissingMaterial        Reason = "MISSING_MATERIAL"
	ReasonInsufficientFunds      Reason = "INSUFFICIENT_FUNDS"
	ReasonNoMerchantNearby       Reason = "NO_MERCHANT_NEARBY"
	ReasonItemNotUsable          Reason = "ITEM_NOT_USABLE"
	ReasonNotEquippable          Reason = "NOT_EQUIPPABLE"
	ReasonCharacterNotFound      Reason = "CHARACTER_NOT_FOUND"
)

// ReasonDomain identifies who owns the reason values on the wire
const ReasonDomain = "rpg-adventure"

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}

// Code returns the error code a reason is reported under
func (r Reason) Code() Code {
	switch r {
	case ReasonCapacityExceeded, ReasonQuestSlotsFull, ReasonInsufficientStamina, ReasonInsufficientFunds:
		return CodeResourceExhausted
	case ReasonItemNotFound, ReasonTargetNotFound, ReasonUnknownRecipe, ReasonCharacterNotFound:
		return CodeNotFound
	case ReasonSlotOccupied, ReasonSlotEmpty, ReasonInsufficientSkillLevel, ReasonMissingMaterial,
		ReasonNoMerchantNearby, ReasonItemNotUsable, ReasonNotEquippable:
		return CodeFailedPrecondition
	case ReasonInvalidDirection:
		return CodeInvalidArgument
	default:
		return CodeInternal
	}
}

// WithReason creates an error whose code is derived from the reason
func WithReason(reason Reason, message string) *Error {
	return &Error{
		Code:    reason.Code(),
		Reason:  reason,
		Message: message,
	}
}

// WithReasonf creates a reasoned error with a formatted message
func WithReasonf(reason Reason, format string, args ...interface{}) *Error {
	return WithReason(reason, fmt.Sprintf(format, args...))
}

// CapacityExceeded creates an inventory capacity error
func CapacityExceeded(message string) *Error {
	return WithReason(ReasonCapacityExceeded, message)
}

// ItemNotFoundf creates an item lookup error
func ItemNotFoundf(format string, args ...interface{}) *Error {
	return WithReasonf(ReasonItemNotFound, format, args...)
}

// TargetNotFoundf creates a nearby target lookup error
func TargetNotFoundf(format string, args ...interface{}) *Error {
	return WithReasonf(ReasonTargetNotFound, format, args...)
}

// CharacterNotFound reports a player that has not started yet
func CharacterNotFound(playerID string) *Error {
	return WithReasonf(ReasonCharacterNotFound, "player %s has no character, call Start first", playerID).
		WithMeta("player_id", playerID)
}

// InsufficientStamina creates a stamina error
func InsufficientStamina(required, available float64) *Error {
	return WithReasonf(ReasonInsufficientStamina, "need %.0f stamina, have %.1f", required, available).
		WithMeta("required", required).
		WithMeta("available", available)
}

// InsufficientFunds creates a gold error
func InsufficientFunds(required, available int) *Error {
	return WithReasonf(ReasonInsufficientFunds, "need %d gold, have %d", required, available).
		WithMeta("required", required).
		WithMeta("available", available)
}

// GetReason extracts the reason from an error, ReasonNone when absent
func GetReason(err error) Reason {
	if err == nil {
		return ReasonNone
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Reason
	}

	return ReasonNone
}

// HasReason reports whether err carries the given reason
func HasReason(err error, reason Reason) bool {
	return reason != ReasonNone && GetReason(err) == reason
}
