package blogportal

import (
	"errors"
	"log/slog"
	"net"
	"strings"

	"github.com/devbloghq/blog-portal/internal/db"
)

// FaultCategory labels a classified storage failure.
type FaultCategory string

const (
	FaultCORS    FaultCategory = "cors"
	FaultRLS     FaultCategory = "rls"
	FaultNetwork FaultCategory = "network"
	FaultGeneric FaultCategory = "generic"
)

const troubleshootingDoc = "/docs/CORS_TROUBLESHOOTING.md"

// Fault is the user-facing shape of a classified storage failure. The
// classification is advisory only: it changes what the UI shows, never what
// the service does.
type Fault struct {
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Category FaultCategory `json:"category"`
	Docs     string        `json:"docs,omitempty"`
}

// Classify maps a storage failure to exactly one category. Precedence is
// fixed: cross-origin, then access policy, then connectivity, then generic.
// Only the generic category carries the original error text.
func Classify(err error) Fault {
	if err == nil {
		return Fault{
			Title:    "Error",
			Message:  "An unknown error occurred. Please try again.",
			Category: FaultGeneric,
		}
	}

	switch {
	case isCorsError(err):
		return Fault{
			Title:    "CORS Policy Error",
			Message:  "Unable to connect to the database service. Check that the row-level security policies for the blogs table are configured.",
			Category: FaultCORS,
			Docs:     troubleshootingDoc,
		}
	case isRLSError(err):
		return Fault{
			Title:    "Permission Denied",
			Message:  "A row-level security policy blocks this operation. Configure the RLS policies for the blogs table.",
			Category: FaultRLS,
			Docs:     troubleshootingDoc,
		}
	case isNetworkError(err):
		return Fault{
			Title:    "Network Error",
			Message:  "Unable to reach the database service. Check your connection and configuration.",
			Category: FaultNetwork,
		}
	default:
		return Fault{
			Title:    "Error",
			Message:  err.Error(),
			Category: FaultGeneric,
		}
	}
}

// LogClassification writes classifier diagnostics for an operation. Debug
// level only, so production runs (Info and above) drop it.
func LogClassification(log *slog.Logger, operation string, err error) {
	if err == nil {
		return
	}

	log.Debug("storage fault classified",
		"operation", operation,
		"error", err,
		"isCors", isCorsError(err),
		"isRls", isRLSError(err),
		"isNetwork", isNetworkError(err),
	)
}

func isCorsError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "cors") ||
		strings.Contains(msg, "cross-origin") ||
		strings.Contains(msg, "access-control-allow-origin")
}

func isRLSError(err error) bool {
	if db.SQLState(err) == db.CodeInsufficientPrivilege {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "row-level security") ||
		strings.Contains(msg, "rls") ||
		strings.Contains(msg, "policy")
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "network") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "dial tcp") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "broken pipe")
}
