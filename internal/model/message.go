package model

import "strings"

// MessageType selects the narration flavour of a summon.
// Opaque to the summon core; the UI layer interprets it.
type MessageType uint8

const (
	MsgGeneric MessageType = iota
	MsgSumMonster
	MsgSumKin
	MsgSumAnimal
	MsgSumSpider
	MsgSumHound
	MsgSumHydra
	MsgSumAinu
	MsgSumDemon
	MsgSumUndead
	MsgSumDragon
	MsgSumHiDemon
	MsgSumHiUndead
	MsgSumHiDragon
	MsgSumWraith
	MsgSumUnique

	messageTypeCount
)

var messageTypeNames = [messageTypeCount]string{
	MsgGeneric:     "GENERIC",
	MsgSumMonster:  "SUM_MONSTER",
	MsgSumKin:      "SUM_KIN",
	MsgSumAnimal:   "SUM_ANIMAL",
	MsgSumSpider:   "SUM_SPIDER",
	MsgSumHound:    "SUM_HOUND",
	MsgSumHydra:    "SUM_HYDRA",
	MsgSumAinu:     "SUM_AINU",
	MsgSumDemon:    "SUM_DEMON",
	MsgSumUndead:   "SUM_UNDEAD",
	MsgSumDragon:   "SUM_DRAGON",
	MsgSumHiDemon:  "SUM_HI_DEMON",
	MsgSumHiUndead: "SUM_HI_UNDEAD",
	MsgSumHiDragon: "SUM_HI_DRAGON",
	MsgSumWraith:   "SUM_WRAITH",
	MsgSumUnique:   "SUM_UNIQUE",
}

func (m MessageType) String() string {
	if m >= messageTypeCount {
		return "UNKNOWN"
	}
	return messageTypeNames[m]
}

// ParseMessageType looks up a message type by name (case-insensitive).
func ParseMessageType(name string) (MessageType, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for m := MessageType(0); m < messageTypeCount; m++ {
		if messageTypeNames[m] == name {
			return m, true
		}
	}
	return MsgGeneric, false
}
