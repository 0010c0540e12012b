package dialog

// Intent is the coarse topic label governing which state machine handles a
// turn. It is either derived from free text by the classifier or locked by an
// explicit scenario declaration.
type Intent string

const (
	IntentNone     Intent = ""
	IntentRent     Intent = "HALL_RENT"
	IntentYoga     Intent = "YOGA"
	IntentKids     Intent = "KIDS_GROUPS"
	IntentTrial    Intent = "BOOK_TRIAL"
	IntentTrainer  Intent = "TRAINER_QUESTION"
	IntentSchedule Intent = "VIEW_SCHEDULE"
	IntentEscalate Intent = "ESCALATION"

	// Free-text classification labels with no multi-turn machine behind them.
	IntentOfferDance Intent = "OFFER_DANCE"
	IntentOffer      Intent = "OFFER"
	IntentDance      Intent = "DANCE"
	IntentGeneral    Intent = "GENERAL"
)

// Stage is the position within the active topic's state machine. Transitions
// are driven by which required slot is still missing, never by counting turns.
type Stage string

const (
	StageIdle Stage = "idle"

	StageAskForWhom     Stage = "ask_for_whom"
	StageAskKidAge      Stage = "ask_kid_age"
	StageKidAgeTooEarly Stage = "ask_kid_age_too_early"
	StageTeenOrAdult    Stage = "ask_teenager_or_adult"
	StageAskInterest    Stage = "ask_kid_interest"
	StageAskTime        Stage = "ask_time"
	StageAskPhone       Stage = "ask_phone"
	StageReady          Stage = "ready"

	StageYogaForWhom Stage = "ask_yoga_for_whom"

	StageRentWait     Stage = "rent_wait_details"
	StageRentFollowup Stage = "rent_followup"

	// Legacy sequential rent flow (kept behind Config.RentLegacyFlow).
	StageRentNeedTime   Stage = "rent_need_time"
	StageRentNeedPeople Stage = "rent_need_people"
	StageRentNeedFormat Stage = "rent_need_format"
)

// Canonical scenario labels as declared by the simulator UI.
const (
	ScenarioTrial   = "Запись на занятие"
	ScenarioKids    = "Детские группы"
	ScenarioRent    = "Аренда зала"
	ScenarioTrainer = "Вопрос о тренере"
	ScenarioYoga    = "Йога"
)

// scenarioIntent maps a canonical scenario label to the intent it locks.
func scenarioIntent(scenario string) Intent {
	switch scenario {
	case ScenarioTrial:
		return IntentTrial
	case ScenarioKids:
		return IntentKids
	case ScenarioRent:
		return IntentRent
	case ScenarioTrainer:
		return IntentTrainer
	case ScenarioYoga:
		return IntentYoga
	}
	return IntentNone
}
