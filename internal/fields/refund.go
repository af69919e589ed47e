package fields

import (
	"strings"

	"github.com/fintrack/docparse/internal/model"
)

// RefundReason returns the first Reason/Cause/Why labeled value, or "".
func RefundReason(text string) string {
	return firstLabeled(text, refundReasonPatterns, 3, 200)
}

// RefundStatus classifies the refund as "processed", "pending",
// "rejected" or "unknown".
func RefundStatus(text string) string {
	lower := strings.ToLower(text)
	for _, w := range []string{"processed", "completed", "approved"} {
		if strings.Contains(lower, w) {
			return model.RefundStatusProcessed
		}
	}
	for _, w := range []string{"pending", "processing", "under review"} {
		if strings.Contains(lower, w) {
			return model.RefundStatusPending
		}
	}
	for _, w := range []string{"rejected", "denied", "declined"} {
		if strings.Contains(lower, w) {
			return model.RefundStatusRejected
		}
	}
	return model.RefundStatusUnknown
}

// RefundMethod returns the channel the money comes back through,
// title-cased, or "".
func RefundMethod(text string) string {
	lower := strings.ToLower(text)
	for _, method := range refundMethods {
		if strings.Contains(lower, method) {
			return titleCase(method)
		}
	}
	return ""
}
