package dialog

// handleKids drives the children's-groups track. The scenario implies the
// lesson is for a child, so the machine opens with the age question; the
// audience question only appears when the user's own words contradict that
// assumption.
func handleKids(sess *Session, in turnInput) turnResult {
	switch sess.Stage {
	case StageIdle:
		if in.Facts.Age > 0 {
			return applyKidAge(sess, in.Facts.Age)
		}
		if mentionsAdult(in.Norm) && !mentionsChild(in.Norm) {
			if sess.Slots.Age > 0 && sess.Slots.Age < 14 {
				// a child age captured earlier contradicts the adult wording
				sess.Slots.Age = 0
			}
			sess.Stage = StageAskForWhom
			return turnResult{Reply: replyAskForWhom, Rule: "kids.audience_mismatch"}
		}
		sess.Slots.ForWhom = "child"
		sess.Stage = StageAskKidAge
		return turnResult{Reply: replyAskKidAge, Rule: "kids.entry"}

	case StageAskForWhom:
		return handleForWhomStage(sess, in)

	case StageAskKidAge:
		if in.Facts.Age > 0 {
			return applyKidAge(sess, in.Facts.Age)
		}
		if mentionsAdult(in.Norm) && !mentionsChild(in.Norm) {
			sess.Slots.ForWhom = "adult"
			sess.Stage = StageAskInterest
			return turnResult{Reply: replyAskInterest, Rule: "kids.adult_switch"}
		}
		return turnResult{Reply: replyKidAgeRepeat, Rule: "kids.age_repeat"}

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

	return turnResult{Reply: replyReady, Rule: "kids.already_ready"}
}

// handleForWhomStage resolves the child/adult audience question used by the
// trial and children's machines.
func handleForWhomStage(sess *Session, in turnInput) turnResult {
	switch {
	case in.Facts.Age > 0 && in.Facts.Age < 14:
		return applyKidAge(sess, in.Facts.Age)
	case mentionsChild(in.Norm):
		sess.Slots.ForWhom = "child"
		sess.Stage = StageAskKidAge
		return turnResult{Reply: replyAskKidAge, Rule: "common.for_whom_child"}
	case mentionsAdult(in.Norm) || in.Facts.Age >= 14:
		sess.Slots.ForWhom = "adult"
		if in.Facts.Age > 0 {
			sess.Slots.Age = in.Facts.Age
		}
		sess.Stage = StageAskInterest
		return turnResult{Reply: replyAskInterest, Rule: "common.for_whom_adult"}
	}
	return turnResult{Reply: replyAskForWhom, Rule: "common.for_whom_repeat"}
}
