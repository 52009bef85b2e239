package handlers

import (
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

type AddressPayload struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	Coordinates  []float64           `json:"coordinates"`
	OpeningHours models.OpeningHours `json:"openingHours"`
}

// addressSyncPlan is the outcome of splitting an incoming address list
// by identifier format: native ObjectID hex ids update existing
// records, anything else (client-generated temporary ids, blanks)
// inserts a new one. Stored records outside KeepIDs are deleted.
type addressSyncPlan struct {
	Updates map[primitive.ObjectID]AddressPayload
	Inserts []AddressPayload
	KeepIDs []primitive.ObjectID
}

func planAddressSync(payloads []AddressPayload) addressSyncPlan {
	plan := addressSyncPlan{
		Updates: make(map[primitive.ObjectID]AddressPayload),
		Inserts: make([]AddressPayload, 0),
		KeepIDs: make([]primitive.ObjectID, 0),
	}

	for _, payload := range payloads {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(payload.ID))
		if err != nil {
			plan.Inserts = append(plan.Inserts, payload)
			continue
		}
		if _, seen := plan.Updates[id]; seen {
			continue
		}
		plan.Updates[id] = payload
		plan.KeepIDs = append(plan.KeepIDs, id)
	}

	return plan
}

// NewTemporaryAddressID returns an id for an address added in the admin
// UI before it is saved. It deliberately does not match the store's
// native id format, so the sync treats it as an insert.
func NewTemporaryAddressID() string {
	return "tmp-" + uuid.NewString()
}
