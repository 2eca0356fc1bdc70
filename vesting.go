package captable

import "github.com/etnz/captable/date"

// Standard 1-year-cliff, 4-year schedule.
const (
	DefaultCliffMonths   = 12
	DefaultVestingMonths = 48
)

// VestingSchedule is a stateless linear vesting configuration, shared by
// all founders unless overridden. CliffMonths must not exceed
// VestingMonths; when they are equal everything vests at once at the cliff.
type VestingSchedule struct {
	CliffMonths   int // months before any share vests
	VestingMonths int // months after which the whole grant is vested
}

// DefaultSchedule returns the standard 12-month cliff, 48-month schedule.
func DefaultSchedule() VestingSchedule {
	return VestingSchedule{CliffMonths: DefaultCliffMonths, VestingMonths: DefaultVestingMonths}
}

// VestingState is where a grant stands on its schedule. It is a pure
// function of elapsed time: nothing is persisted between calls.
type VestingState int

const (
	Unvested VestingState = iota
	Vesting
	FullyVested
)

func (s VestingState) String() string {
	switch s {
	case Unvested:
		return "unvested"
	case Vesting:
		return "vesting"
	case FullyVested:
		return "fully vested"
	default:
		return "unknown"
	}
}

// StateAt returns the state of a grant after the given number of elapsed
// months.
func (v VestingSchedule) StateAt(elapsedMonths int) VestingState {
	switch {
	case elapsedMonths < v.CliffMonths:
		return Unvested
	case elapsedMonths >= v.VestingMonths:
		return FullyVested
	default:
		return Vesting
	}
}

// VestingResult is the vested/unvested split of one founder's grant at a
// reference date.
type VestingResult struct {
	Months        int // whole calendar months elapsed since the vesting start
	Vested        Quantity
	Unvested      Quantity
	VestedPercent Percent // 0 for an empty grant
	State         VestingState
}

// VestedShares computes the vested and unvested share counts of a founder's
// grant as of a reference date. Vesting is linear over VestingMonths, with
// nothing vesting before CliffMonths and the whole grant vested from
// VestingMonths on. Partial months truncate down: a founder never shows
// more shares than earned. The reference date is the only clock involved,
// so the same inputs always produce the same result.
func VestedShares(f Founder, schedule VestingSchedule, asOf date.Date) VestingResult {
	elapsed := date.MonthsElapsed(f.StartDate, asOf)
	state := schedule.StateAt(elapsed)

	var vested Quantity
	switch state {
	case Unvested:
		vested = Q(0)
	case FullyVested:
		vested = f.Shares
	default:
		vested = f.Shares.Mul(Q(elapsed)).Div(Q(schedule.VestingMonths)).Floor()
	}

	return VestingResult{
		Months:        elapsed,
		Vested:        vested,
		Unvested:      f.Shares.Sub(vested),
		VestedPercent: percentOf(vested, f.Shares),
		State:         state,
	}
}
