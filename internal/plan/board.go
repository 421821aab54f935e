package plan

import "mom-planner/internal/model"

// Board is the editable plan of a session. Items are addressed by position.
type Board struct {
	items []model.PlanItem
}

// NewBoard creates a board holding a copy of items. Missing statuses default
// to Not Started.
func NewBoard(items []model.PlanItem) *Board {
	b := &Board{}
	b.Replace(items)
	return b
}

// Replace swaps in a whole new plan.
func (b *Board) Replace(items []model.PlanItem) {
	b.items = make([]model.PlanItem, len(items))
	copy(b.items, items)
	for i := range b.items {
		if b.items[i].Status == "" {
			b.items[i].Status = model.StatusNotStarted
		}
	}
}

// Clear drops the plan.
func (b *Board) Clear() {
	b.items = nil
}

// Len returns the number of items.
func (b *Board) Len() int {
	return len(b.items)
}

// Items returns a copy of the plan in display order.
func (b *Board) Items() []model.PlanItem {
	if b.items == nil {
		return nil
	}
	out := make([]model.PlanItem, len(b.items))
	copy(out, b.items)
	return out
}

// Item returns the item at index.
func (b *Board) Item(index int) (model.PlanItem, error) {
	if index < 0 || index >= len(b.items) {
		return model.PlanItem{}, ErrItemNotFound
	}
	return b.items[index], nil
}

// SetDueDate replaces the due date at index. The string is not validated.
func (b *Board) SetDueDate(index int, dueDate string) error {
	if index < 0 || index >= len(b.items) {
		return ErrItemNotFound
	}
	b.items[index].DueDate = dueDate
	return nil
}

// SetStatus replaces the status at index.
func (b *Board) SetStatus(index int, status model.Status) error {
	if index < 0 || index >= len(b.items) {
		return ErrItemNotFound
	}
	normalized, ok := model.ParseStatus(string(status))
	if !ok {
		return ErrInvalidStatus
	}
	b.items[index].Status = normalized
	return nil
}
