package calculator

// Lock computes the authoritative allocation of a shared line.
//
// Without force the line must already be fully specified: it needs
// participants and, in units mode, claims covering the whole quantity.
// With force, a line without participants is assigned wholly to its
// creator and unclaimed units are added to the creator's claim.
// Lock returns the (possibly completed) line alongside the allocation.
func Lock(line Line, creatorID string, force bool) (Line, []Allocation, error) {
	if force {
		line = complete(line, creatorID)
	}
	allocs, err := Allocate(line, Strict)
	if err != nil {
		return line, nil, err
	}
	return line, allocs, nil
}

func complete(line Line, creatorID string) Line {
	shares := make([]Share, len(line.Shares))
	copy(shares, line.Shares)
	line.Shares = shares

	if len(line.Shares) == 0 {
		s := Share{ParticipantID: creatorID, Weight: 1}
		if line.Mode == Units {
			s.Units = line.Quantity
		}
		line.Shares = []Share{s}
		return line
	}

	if line.Mode != Units {
		return line
	}
	missing := line.Quantity - line.ClaimedUnits()
	if missing <= 0 {
		return line
	}
	for i := range line.Shares {
		if line.Shares[i].ParticipantID == creatorID {
			line.Shares[i].Units += missing
			return line
		}
	}
	line.Shares = append(line.Shares, Share{ParticipantID: creatorID, Units: missing})
	return line
}
