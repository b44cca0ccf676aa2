package products

import "github.com/kbukum/mws/strenum"

// Condition is an item condition.
type Condition int

const (
	ConditionUnknown Condition = iota
	ConditionNew
	ConditionUsed
	ConditionCollectible
	ConditionRefurbished
	ConditionClub
)

// Conditions maps conditions to their wire names.
var Conditions = strenum.NewSet(map[Condition]string{
	ConditionNew:         "New",
	ConditionUsed:        "Used",
	ConditionCollectible: "Collectible",
	ConditionRefurbished: "Refurbished",
	ConditionClub:        "Club",
})

// ItemCondition keeps unrecognized conditions verbatim.
type ItemCondition = strenum.Value[Condition]

// Availability tells when an offer can ship.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	AvailabilityNow
	AvailabilityFutureWithoutDate
	AvailabilityFutureWithDate
)

// Availabilities maps availability kinds to their wire names.
var Availabilities = strenum.NewSet(map[Availability]string{
	AvailabilityNow:               "NOW",
	AvailabilityFutureWithoutDate: "FUTURE_WITHOUT_DATE",
	AvailabilityFutureWithDate:    "FUTURE_WITH_DATE",
})

// AvailabilityType keeps unrecognized availability kinds verbatim.
type AvailabilityType = strenum.Value[Availability]
