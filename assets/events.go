package assets

// EventHandlerID names one of the timed-event handlers (spec.md §4.12).
type EventHandlerID uint8

const (
	EventAnotherDayDawns EventHandlerID = iota
	EventWakeUp
	EventNewRedCrossParcel
	EventGoToRollCall
	EventGoToBreakfast2
	EventEndOfBreakfast
	EventGoToExercise
	EventExerciseDone
	EventGoToBed2
	EventTimeForBed
	EventNightTime
	EventSearchlightOn
)

// TimedEvent pairs a day-clock value with the handler it triggers.
type TimedEvent struct {
	Time    uint8
	Handler EventHandlerID
}

// DayClockModulus is the day length in clock ticks (spec.md §4.12); the
// dispatcher checks the schedule and advances the clock by one, modulo
// this, on every 64th main-loop tick, so a day lasts 140x64 main-loop
// ticks.
const DayClockModulus = 140

// TimedEventTable is the 15-entry schedule (spec.md §4.12).
var TimedEventTable = []TimedEvent{
	{Time: 0, Handler: EventAnotherDayDawns},
	{Time: 8, Handler: EventWakeUp},
	{Time: 12, Handler: EventNewRedCrossParcel},
	{Time: 16, Handler: EventGoToRollCall},
	{Time: 20, Handler: EventGoToRollCall},
	{Time: 21, Handler: EventGoToBreakfast2},
	{Time: 36, Handler: EventEndOfBreakfast},
	{Time: 46, Handler: EventGoToExercise},
	{Time: 64, Handler: EventExerciseDone},
	{Time: 74, Handler: EventGoToRollCall},
	{Time: 78, Handler: EventGoToRollCall},
	{Time: 79, Handler: EventGoToBed2},
	{Time: 98, Handler: EventTimeForBed},
	{Time: 100, Handler: EventNightTime},
	{Time: 130, Handler: EventSearchlightOn},
}

// Message text queued by action handlers and rendered by message_display
// (spec.md §4.12, §7).
const (
	MsgDoorLocked      = "THE DOOR IS LOCKED"
	MsgIncorrectKey    = "INCORRECT KEY"
	MsgMissedRollCall  = "MISSED ROLL CALL"
	MsgTimeToWakeUp    = "TIME TO WAKE UP"
	MsgWelcome1        = "WELCOME TO"
	MsgWelcome2        = "YOUR NEW HOME"
	MsgMoraleIsZero    = "MORALE IS ZERO"
	MsgItemDiscovered  = "ITEM DISCOVERED"
	MsgPickedUpItem    = "YOU HAVE GOT"
	MsgDroppedItem     = "YOU HAVE DROPPED"
	MsgSentToSolitary1 = "YOU HAVE BEEN"
	MsgSentToSolitary2 = "SENT TO SOLITARY"
)

// MessageQueueCapacity is the bounded message queue size (spec.md §4.12).
const MessageQueueCapacity = 19
