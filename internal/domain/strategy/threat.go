package strategy

type ThreatLevel int

const (
	ThreatLow ThreatLevel = iota
	ThreatMedium
	ThreatHigh
)

func (l ThreatLevel) String() string {
	switch l {
	case ThreatHigh:
		return "high"
	case ThreatMedium:
		return "medium"
	default:
		return "low"
	}
}

// ThreatReport grades the aggression observed last turn. DefenseBoost is the
// additive widening applied to the armor budget cap; HoarderReserve is the
// summed burst estimate of hoarding opponents, which raises the armor floor.
type ThreatReport struct {
	Level          ThreatLevel
	AttackerRatio  float64
	IncomingDamage int
	HoarderReserve int
	DefenseBoost   float64
}

// AnalyzeThreat scores the intensity of attacks received against the size of
// the remaining field, plus the latent danger banked by under-spenders.
func AnalyzeThreat(snap Snapshot, profiles map[int]Profile, tun Tuning) ThreatReport {
	living := len(snap.Living)
	if living < 1 {
		living = 1
	}
	report := ThreatReport{
		AttackerRatio:  float64(len(snap.Attackers)) / float64(living),
		IncomingDamage: snap.IncomingDamage(),
	}
	for _, prof := range profiles {
		if prof.Hoarding {
			report.HoarderReserve += prof.Reserve
		}
	}

	switch {
	case report.AttackerRatio >= tun.HighAttackerRatio || report.IncomingDamage >= tun.HighDamage:
		report.Level = ThreatHigh
		report.DefenseBoost = tun.HighDefenseBoost
	case len(snap.Attackers) >= tun.MediumAttackers || report.IncomingDamage >= tun.MediumDamage:
		report.Level = ThreatMedium
		report.DefenseBoost = tun.MediumDefenseBoost
	default:
		report.Level = ThreatLow
	}
	return report
}
