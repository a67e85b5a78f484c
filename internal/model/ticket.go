package model

import "time"

// Support ticket priorities and statuses.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"

	TicketOpen       = "OPEN"
	TicketInProgress = "IN_PROGRESS"
	TicketResolved   = "RESOLVED"
)

// ValidPriority reports whether s is a known ticket priority.
func ValidPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// SupportTicket represents a row in the `support_tickets` table.
// AssigneeID references a SUPPORT-role account when the ticket has been
// picked up.
type SupportTicket struct {
	ID          uint64    `json:"id"`                   // support_tickets.id
	Subject     string    `json:"subject"`              // support_tickets.subject
	Message     string    `json:"message"`              // support_tickets.message
	Priority    string    `json:"priority"`             // support_tickets.priority
	Category    string    `json:"category,omitempty"`   // support_tickets.category
	RequesterID uint64    `json:"requesterId"`          // support_tickets.requester_id
	AssigneeID  *uint64   `json:"assigneeId,omitempty"` // support_tickets.assignee_id (nullable)
	Status      string    `json:"status"`               // support_tickets.status
	CreatedAt   time.Time `json:"createdAt"`            // support_tickets.created_at
	UpdatedAt   time.Time `json:"updatedAt"`            // support_tickets.updated_at
}
