package alignment

import "math"

var negInf = math.Inf(-1)

// matrices holds the three score matrices and their backpointers, indexed
// by State. They live only for the duration of one Align call.
type matrices struct {
	score [3][][]float64
	back  [3][][]State
}

func newMatrices(rows, cols int) *matrices {
	mat := &matrices{}
	for s := range mat.score {
		mat.score[s] = make([][]float64, rows)
		mat.back[s] = make([][]State, rows)
		for i := 0; i < rows; i++ {
			row := make([]float64, cols)
			for j := range row {
				row[j] = negInf
			}
			mat.score[s][i] = row
			mat.back[s][i] = make([]State, cols)
		}
	}
	return mat
}

// best returns the maximum of three candidates and the state that produced
// it. Ties go to the first listed candidate.
func best(m, x, y float64) (float64, State) {
	score, state := m, Match
	if x > score {
		score, state = x, Gap1
	}
	if y > score {
		score, state = y, Gap2
	}
	return score, state
}

// boundary is the seeded score of the gap matrices at offset k on the first
// row or column. k = 0 gives GapOpen - GapExtend.
func boundary(scoring *Scoring, k int) float64 {
	return scoring.GapOpen + float64(k-1)*scoring.GapExtend
}

// Align computes an optimal global alignment of two signals under an
// affine gap penalty.
//
// Gaps in the second signal are columns of the Gap1 matrix; gaps in the
// first signal are columns of the Gap2 matrix. An empty signal is aligned
// entirely against gaps; two empty signals give an empty result with a
// score of zero. A nil scoring uses TraceScoring.
//
//	ensures len(result.Seq1) == len(result.Seq2)
//	ensures result.Seq1.Values() == seq1 and result.Seq2.Values() == seq2
func Align(seq1, seq2 []float64, scoring *Scoring) (*Result, error) {
	if scoring == nil {
		scoring = TraceScoring()
	}
	if err := scoring.Validate(); err != nil {
		return nil, err
	}

	m, n := len(seq1), len(seq2)
	if m == 0 && n == 0 {
		return &Result{Seq1: Track{}, Seq2: Track{}}, nil
	}

	mat := fillMatrices(seq1, seq2, scoring)
	score, state := best(
		mat.score[Match][m][n],
		mat.score[Gap1][m][n],
		mat.score[Gap2][m][n],
	)

	aligned1, aligned2 := traceback(seq1, seq2, mat, state)
	return &Result{Score: score, Seq1: aligned1, Seq2: aligned2}, nil
}

func fillMatrices(seq1, seq2 []float64, scoring *Scoring) *matrices {
	m, n := len(seq1), len(seq2)
	mat := newMatrices(m+1, n+1)
	sm, sx, sy := mat.score[Match], mat.score[Gap1], mat.score[Gap2]
	bm, bx, by := mat.back[Match], mat.back[Gap1], mat.back[Gap2]

	sm[0][0] = 0
	for i := 0; i <= m; i++ {
		sx[i][0] = boundary(scoring, i)
		bx[i][0] = Gap1
	}
	for j := 0; j <= n; j++ {
		sy[0][j] = boundary(scoring, j)
		by[0][j] = Gap2
	}

	open, ext := scoring.GapOpen, scoring.GapExtend
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			delta := scoring.Match(seq1[i-1], seq2[j-1])

			sm[i][j], bm[i][j] = best(
				sm[i-1][j-1]+delta,
				sx[i-1][j-1]+delta,
				sy[i-1][j-1]+delta,
			)
			sx[i][j], bx[i][j] = best(
				sm[i-1][j]+open,
				sx[i-1][j]+ext,
				sy[i-1][j]+open,
			)
			sy[i][j], by[i][j] = best(
				sm[i][j-1]+open,
				sx[i][j-1]+open,
				sy[i][j-1]+ext,
			)
		}
	}

	return mat
}

// traceback walks the backpointers from (len1, len2) to the origin.
func traceback(seq1, seq2 []float64, mat *matrices, state State) (Track, Track) {
	i, j := len(seq1), len(seq2)
	aligned1 := make(Track, 0, i+j)
	aligned2 := make(Track, 0, i+j)

	for i > 0 || j > 0 {
		// Only the seeded boundary is reachable once one signal is consumed.
		if i == 0 {
			state = Gap2
		} else if j == 0 {
			state = Gap1
		}

		switch state {
		case Match:
			aligned1 = append(aligned1, Position{Value: seq1[i-1]})
			aligned2 = append(aligned2, Position{Value: seq2[j-1]})
			state = mat.back[Match][i][j]
			i--
			j--
		case Gap1:
			aligned1 = append(aligned1, Position{Value: seq1[i-1]})
			aligned2 = append(aligned2, GapPosition)
			state = mat.back[Gap1][i][j]
			i--
		case Gap2:
			aligned1 = append(aligned1, GapPosition)
			aligned2 = append(aligned2, Position{Value: seq2[j-1]})
			state = mat.back[Gap2][i][j]
			j--
		}
	}

	reverseTrack(aligned1)
	reverseTrack(aligned2)
	return aligned1, aligned2
}

func reverseTrack(t Track) {
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
}

// AlignScoreOnly calculates the global alignment score without traceback.
//
// Uses O(len2) space instead of O(len1·len2) by only keeping two rows of
// each matrix. The score is identical to Align's.
func AlignScoreOnly(seq1, seq2 []float64, scoring *Scoring) (float64, error) {
	if scoring == nil {
		scoring = TraceScoring()
	}
	if err := scoring.Validate(); err != nil {
		return 0, err
	}

	m, n := len(seq1), len(seq2)
	if m == 0 && n == 0 {
		return 0, nil
	}

	newRow := func() []float64 {
		row := make([]float64, n+1)
		for j := range row {
			row[j] = negInf
		}
		return row
	}

	prevM, prevX, prevY := newRow(), newRow(), newRow()
	currM, currX, currY := newRow(), newRow(), newRow()

	prevM[0] = 0
	prevX[0] = boundary(scoring, 0)
	for j := 0; j <= n; j++ {
		prevY[j] = boundary(scoring, j)
	}

	open, ext := scoring.GapOpen, scoring.GapExtend
	for i := 1; i <= m; i++ {
		currM[0] = negInf
		currX[0] = boundary(scoring, i)
		currY[0] = negInf

		for j := 1; j <= n; j++ {
			delta := scoring.Match(seq1[i-1], seq2[j-1])
			currM[j], _ = best(prevM[j-1]+delta, prevX[j-1]+delta, prevY[j-1]+delta)
			currX[j], _ = best(prevM[j]+open, prevX[j]+ext, prevY[j]+open)
			currY[j], _ = best(currM[j-1]+open, currX[j-1]+open, currY[j-1]+ext)
		}

		prevM, currM = currM, prevM
		prevX, currX = currX, prevX
		prevY, currY = currY, prevY
	}

	score, _ := best(prevM[n], prevX[n], prevY[n])
	return score, nil
}
