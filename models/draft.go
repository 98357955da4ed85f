package models

// BookingDraft is an in-progress booking held only for the duration of a
// conversation turn. Fields not yet provided are simply absent.
type BookingDraft map[string]any

// Clone returns a shallow copy of the draft.
func (d BookingDraft) Clone() BookingDraft {
	out := make(BookingDraft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Merge applies updates on top of the draft, returning a new draft.
// New values overwrite old ones for the same field name only.
func (d BookingDraft) Merge(updates map[string]any) BookingDraft {
	out := d.Clone()
	for k, v := range updates {
		out[k] = v
	}
	return out
}

// ID returns the persisted identifier, or "" if the draft has not been
// created in the record store yet.
func (d BookingDraft) ID() string {
	id, _ := d["id"].(string)
	return id
}
