package model

// DeletedList is a bin entry for a soft-deleted list. SourceBoard names the
// board the list was detached from, so restore can put it back.
type DeletedList struct {
	List        *List
	SourceBoard string
}

// DeletedCard is a bin entry for a soft-deleted card.
type DeletedCard struct {
	Card        *Card
	SourceBoard string
	SourceList  string
}

// Bin holds soft-deleted lists and cards. Entries leave the bin only via
// explicit restore or explicit purge.
type Bin struct {
	Lists []DeletedList
	Cards []DeletedCard
}

// NewBin returns an empty bin.
func NewBin() Bin {
	return Bin{Lists: make([]DeletedList, 0), Cards: make([]DeletedCard, 0)}
}

// AddList records a soft-deleted list.
func (b *Bin) AddList(l *List, sourceBoard string) {
	b.Lists = append(b.Lists, DeletedList{List: l, SourceBoard: sourceBoard})
}

// AddCard records a soft-deleted card.
func (b *Bin) AddCard(c *Card, sourceBoard, sourceList string) {
	b.Cards = append(b.Cards, DeletedCard{Card: c, SourceBoard: sourceBoard, SourceList: sourceList})
}

// FindList returns the first bin entry for the named list, or nil.
func (b *Bin) FindList(name string) *DeletedList {
	for i := range b.Lists {
		if b.Lists[i].List.Name == name {
			return &b.Lists[i]
		}
	}
	return nil
}

// FindCard returns the first bin entry for the named card, or nil.
func (b *Bin) FindCard(name string) *DeletedCard {
	for i := range b.Cards {
		if b.Cards[i].Card.Name == name {
			return &b.Cards[i]
		}
	}
	return nil
}

// TakeList removes and returns the first bin entry for the named list.
func (b *Bin) TakeList(name string) (DeletedList, bool) {
	for i := range b.Lists {
		if b.Lists[i].List.Name == name {
			e := b.Lists[i]
			b.Lists = append(b.Lists[:i], b.Lists[i+1:]...)
			return e, true
		}
	}
	return DeletedList{}, false
}

// TakeCard removes and returns the first bin entry for the named card.
func (b *Bin) TakeCard(name string) (DeletedCard, bool) {
	for i := range b.Cards {
		if b.Cards[i].Card.Name == name {
			e := b.Cards[i]
			b.Cards = append(b.Cards[:i], b.Cards[i+1:]...)
			return e, true
		}
	}
	return DeletedCard{}, false
}

// PurgeList permanently removes the named list from the bin, together with
// any binned cards that were deleted out of that same list.
func (b *Bin) PurgeList(name string) bool {
	e, ok := b.TakeList(name)
	if !ok {
		return false
	}
	kept := b.Cards[:0]
	for _, dc := range b.Cards {
		if dc.SourceBoard == e.SourceBoard && dc.SourceList == name {
			continue
		}
		kept = append(kept, dc)
	}
	b.Cards = kept
	return true
}

// PurgeCard permanently removes the named card from the bin.
func (b *Bin) PurgeCard(name string) bool {
	_, ok := b.TakeCard(name)
	return ok
}
