package alignment

// Fill reconstructs a dense signal from a gapped track.
//
// Each gap run is replaced by a linear ramp between the value before the run
// and the value after it, both ends inclusive. A run at the start of the
// track has no left anchor and takes the first value after it. A run at the
// end of the track has no right anchor and repeats the last value before it.
// Positions outside gap runs are copied.
//
// A track made only of gaps returns *UnresolvableGapError.
func Fill(track Track) ([]float64, error) {
	filled := make([]float64, len(track))
	if len(track) == 0 {
		return filled, nil
	}

	// anchor is the index the open gap run is measured from. For a leading
	// run it points at the first gap itself.
	inGap := track[0].Gap
	anchor := 0

	for i, p := range track {
		if inGap {
			if p.Gap {
				continue
			}
			left, right := track[anchor].Value, p.Value
			if track[anchor].Gap {
				left = right
			}
			span := float64(i - anchor)
			for k := anchor; k <= i; k++ {
				filled[k] = left + (right-left)*float64(k-anchor)/span
			}
			inGap = false
			continue
		}

		if p.Gap {
			anchor = i - 1
			inGap = true
		} else {
			filled[i] = p.Value
		}
	}

	if inGap {
		if track[anchor].Gap {
			return nil, &UnresolvableGapError{Length: len(track)}
		}
		for k := anchor + 1; k < len(track); k++ {
			filled[k] = track[anchor].Value
		}
	}

	return filled, nil
}

// FillResult fills both tracks of an alignment.
func FillResult(r *Result) ([]float64, []float64, error) {
	filled1, err := Fill(r.Seq1)
	if err != nil {
		return nil, nil, err
	}
	filled2, err := Fill(r.Seq2)
	if err != nil {
		return nil, nil, err
	}
	return filled1, filled2, nil
}
