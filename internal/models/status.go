package models

type ShowStatus string

const (
	ShowScheduled   ShowStatus = "SCHEDULED"
	ShowRescheduled ShowStatus = "RESCHEDULED"
	ShowCancelled   ShowStatus = "CANCELLED"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// showTransitions enumerates every legal status change. CANCELLED is
// terminal: it has no outgoing edges.
var showTransitions = map[ShowStatus][]ShowStatus{
	ShowScheduled:   {ShowRescheduled, ShowCancelled},
	ShowRescheduled: {ShowScheduled, ShowCancelled},
	ShowCancelled:   {},
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled},
	BookingCancelled: {},
}

func (s ShowStatus) CanTransitionTo(to ShowStatus) bool {
	for _, next := range showTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ShowStatus) Valid() bool {
	_, ok := showTransitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}
