package models

import "time"

// ReconcileKind names the compensation a reconciliation event asks for.
type ReconcileKind string

const (
	// ReconcileDetachChat removes a chat id still listed on its owner after
	// the chat document was deleted.
	ReconcileDetachChat ReconcileKind = "detach_chat"
	// ReconcileDeleteChat deletes a chat document whose owner no longer lists it.
	ReconcileDeleteChat ReconcileKind = "delete_chat"
	// ReconcileOrphanChat deletes a chat that was never attached to its owner.
	ReconcileOrphanChat ReconcileKind = "orphan_chat"
)

// ReconciliationEvent records one side of a chat saga that failed to apply.
type ReconciliationEvent struct {
	ID        string        `json:"id"`
	Kind      ReconcileKind `json:"kind"`
	UserID    string        `json:"userId"`
	ChatID    string        `json:"chatId"`
	Reason    string        `json:"reason"`
	Attempts  int           `json:"attempts"`
	CreatedAt time.Time     `json:"createdAt"`
}
