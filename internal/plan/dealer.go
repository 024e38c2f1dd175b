package plan

import "ssbh-bindings/internal/analyze"

// Dealer is a work queue of types to visit. A type is handed out once, in
// the order it was first needed.
type Dealer struct {
	queue []analyze.TypeID
	done  map[analyze.TypeID]struct{}
}

// Needs queues id unless it was already queued or handed out.
func (d *Dealer) Needs(id analyze.TypeID) {
	if d.done == nil {
		d.done = make(map[analyze.TypeID]struct{})
	}

	if _, exists := d.done[id]; exists {
		return
	}

	d.done[id] = struct{}{}
	d.queue = append(d.queue, id)
}

// Next hands out the next queued type.
func (d *Dealer) Next() (analyze.TypeID, bool) {
	if len(d.queue) == 0 {
		return analyze.TypeID{}, false
	}

	id := d.queue[0]
	d.queue = d.queue[1:]

	return id, true
}

// Seen reports whether id was ever queued.
func (d *Dealer) Seen(id analyze.TypeID) bool {
	_, ok := d.done[id]
	return ok
}
