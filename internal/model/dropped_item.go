package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DroppedItem represents an item lying on the ground, waiting for pickup.
// Built by the loot engine right before the spawn callback fires; the
// consuming game systems treat it as read-only.
type DroppedItem struct {
	instanceID uuid.UUID // unique per drop instance
	itemID     int32     // template ID (internal/data item registry)
	count      int32
	location   Location
	dropTime   time.Time
}

// NewDroppedItem creates a dropped item at the given location.
func NewDroppedItem(itemID, count int32, loc Location) (*DroppedItem, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("itemID must be > 0, got %d", itemID)
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be > 0, got %d", count)
	}

	return &DroppedItem{
		instanceID: uuid.New(),
		itemID:     itemID,
		count:      count,
		location:   loc,
		dropTime:   time.Now(),
	}, nil
}

// InstanceID returns the unique ID of this drop instance.
func (d *DroppedItem) InstanceID() uuid.UUID { return d.instanceID }

// ItemID returns the item template ID.
func (d *DroppedItem) ItemID() int32 { return d.itemID }

// Count returns the stack count.
func (d *DroppedItem) Count() int32 { return d.count }

// Location returns where the item lies.
func (d *DroppedItem) Location() Location { return d.location }

// DropTime returns when the item was dropped.
func (d *DroppedItem) DropTime() time.Time { return d.dropTime }
