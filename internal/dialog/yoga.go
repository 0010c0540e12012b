package dialog

// handleYoga drives the yoga track. The interest slot is pre-filled, so the
// flow goes audience, time, phone. A child audience falls back onto the
// children's age guards.
func handleYoga(sess *Session, in turnInput) turnResult {
	if sess.Slots.Interest == "" {
		sess.Slots.Interest = "Йога"
	}

	switch sess.Stage {
	case StageIdle:
		switch {
		case mentionsChild(in.Norm) && in.Facts.Age > 0:
			return applyKidAge(sess, in.Facts.Age)
		case mentionsChild(in.Norm):
			sess.Slots.ForWhom = "child"
			sess.Stage = StageAskKidAge
			return turnResult{Reply: replyAskKidAge, Rule: "yoga.child_entry"}
		case mentionsAdult(in.Norm):
			sess.Slots.ForWhom = "adult"
			sess.Stage = StageAskTime
			return turnResult{Reply: replyAskTime, QuickActions: timeSlotActions, Rule: "yoga.adult_entry"}
		}
		sess.Stage = StageYogaForWhom
		return turnResult{Reply: replyYogaForWhom, Rule: "yoga.entry"}

	case StageYogaForWhom:
		switch {
		case in.Facts.Age > 0 && in.Facts.Age < 14:
			return applyKidAge(sess, in.Facts.Age)
		case mentionsChild(in.Norm):
			sess.Slots.ForWhom = "child"
			sess.Stage = StageAskKidAge
			return turnResult{Reply: replyAskKidAge, Rule: "yoga.for_whom_child"}
		case mentionsAdult(in.Norm) || in.Facts.Age >= 14:
			sess.Slots.ForWhom = "adult"
			sess.Stage = StageAskTime
			return turnResult{Reply: replyAskTime, QuickActions: timeSlotActions, Rule: "yoga.for_whom_adult"}
		}
		return turnResult{Reply: replyYogaForWhom, Rule: "yoga.for_whom_repeat"}

	case StageAskKidAge:
		if in.Facts.Age > 0 {
			return applyKidAge(sess, in.Facts.Age)
		}
		return turnResult{Reply: replyKidAgeRepeat, Rule: "yoga.age_repeat"}

	case StageKidAgeTooEarly:
		return handleTooEarlyStage(sess, in)

	case StageTeenOrAdult:
		return handleTeenOrAdultStage(sess, in)

	case StageAskInterest:
		return handleInterestStage(sess, in)

	case StageAskTime:
		return handleTimeStage(sess, in)

	case StageAskPhone:
		return handlePhoneStage(sess, in)
	}

	return turnResult{Reply: replyReady, Rule: "yoga.already_ready"}
}
