package valueobjects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotificationType is an open-ended category tag stored as a database enum.
type NotificationType string

const (
	TypeWelcome        NotificationType = "welcome"
	TypeTicketCreated  NotificationType = "ticket_created"
	TypeTicketUpdated  NotificationType = "ticket_updated"
	TypeTicketAssigned NotificationType = "ticket_assigned"
	TypeCommentAdded   NotificationType = "comment_added"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeWelcome:        true,
	TypeTicketCreated:  true,
	TypeTicketUpdated:  true,
	TypeTicketAssigned: true,
	TypeCommentAdded:   true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

// Label renders the type for people, e.g. ticket_created -> "Ticket Created".
func (t NotificationType) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "_", " "))
}

// AllNotificationTypes lists the known types in a stable order.
func AllNotificationTypes() []NotificationType {
	return []NotificationType{TypeWelcome, TypeTicketCreated, TypeTicketUpdated, TypeTicketAssigned, TypeCommentAdded}
}
