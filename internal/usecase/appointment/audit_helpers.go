package appointment

import (
	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

func auditEvent(actor domain.Actor, action string, id uint, meta any) audit.Event {
	actorID := actor.ID
	entityID := id
	return audit.Event{
		ActorRole: string(actor.Role),
		ActorID:   &actorID,
		Action:    action,
		Entity:    "appointment",
		EntityID:  &entityID,
		Metadata:  meta,
	}
}
