package claw

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Frame files follow the classic ascii layout: fort.tNNNN carries the frame
// metadata, fort.qNNNN the conserved quantities and fort.aNNNN the auxiliary
// fields. The renderer reads frames back by index through ReadFrame.

func frameFile(prefix string, frame int) string {
	return fmt.Sprintf("fort.%s%04d", prefix, frame)
}

// WriteFrame persists one solution snapshot under outdir
func WriteFrame(sol *Solution, frame int, outdir string, writeAux bool) (err error) {
	var (
		state = sol.State
		mx    = sol.Domain.NumCells()
	)
	if err = os.MkdirAll(outdir, 0755); err != nil {
		return
	}
	// Time file
	tf, err := os.Create(filepath.Join(outdir, frameFile("t", frame)))
	if err != nil {
		return
	}
	defer tf.Close()
	fmt.Fprintf(tf, "%26.16e %20s\n", sol.T, "time")
	fmt.Fprintf(tf, "%10d %36s\n", state.NumEqn, "meqn")
	fmt.Fprintf(tf, "%10d %36s\n", 1, "ngrids")
	fmt.Fprintf(tf, "%10d %36s\n", state.NumAux, "naux")
	fmt.Fprintf(tf, "%10d %36s\n", 1, "ndim")

	// Conserved quantities
	qf, err := os.Create(filepath.Join(outdir, frameFile("q", frame)))
	if err != nil {
		return
	}
	defer qf.Close()
	w := bufio.NewWriter(qf)
	writeGridHeader(w, sol, mx)
	for i := 0; i < mx; i++ {
		for m := 0; m < state.NumEqn; m++ {
			fmt.Fprintf(w, " %26.16e", state.Q.At(m, i))
		}
		fmt.Fprintln(w)
	}
	if err = w.Flush(); err != nil {
		return
	}

	if writeAux && state.NumAux > 0 {
		var af *os.File
		if af, err = os.Create(filepath.Join(outdir, frameFile("a", frame))); err != nil {
			return
		}
		defer af.Close()
		wa := bufio.NewWriter(af)
		writeGridHeader(wa, sol, mx)
		for i := 0; i < mx; i++ {
			for m := 0; m < state.NumAux; m++ {
				fmt.Fprintf(wa, " %26.16e", state.Aux.At(m, i))
			}
			fmt.Fprintln(wa)
		}
		if err = wa.Flush(); err != nil {
			return
		}
	}
	return
}

func writeGridHeader(w *bufio.Writer, sol *Solution, mx int) {
	fmt.Fprintf(w, "%10d %36s\n", 1, "grid_number")
	fmt.Fprintf(w, "%10d %36s\n", 1, "amr_level")
	fmt.Fprintf(w, "%10d %36s\n", mx, "mx")
	fmt.Fprintf(w, "%26.16e %20s\n", sol.Domain.Dim.Lower, "xlow")
	fmt.Fprintf(w, "%26.16e %20s\n", sol.Domain.Delta(), "dx")
	fmt.Fprintln(w)
}

// ReadFrame loads frame from outdir; aux fields are read when readAux is
// set and the aux file exists for that frame.
func ReadFrame(frame int, outdir string, readAux bool) (sol *Solution, err error) {
	var (
		t              float64
		meqn, naux, mx int
		xlow, dx       float64
	)
	tvals, err := readValueFile(filepath.Join(outdir, frameFile("t", frame)), 5)
	if err != nil {
		return nil, fmt.Errorf("frame %d metadata: %w", frame, err)
	}
	t = tvals[0]
	meqn = int(tvals[1])
	naux = int(tvals[3])

	qpath := filepath.Join(outdir, frameFile("q", frame))
	header, rows, err := readGridFile(qpath, meqn)
	if err != nil {
		return nil, fmt.Errorf("frame %d solution: %w", frame, err)
	}
	mx = int(header[2])
	xlow, dx = header[3], header[4]
	if len(rows) != mx {
		return nil, fmt.Errorf("frame %d solution: expected %d cells, found %d", frame, mx, len(rows))
	}

	dim := NewDimension(xlow, xlow+float64(mx)*dx, mx)
	domain := NewDomain(dim)
	state := NewState(domain, meqn, naux)
	for i, row := range rows {
		for m := 0; m < meqn; m++ {
			state.Q.Set(m, i, row[m])
		}
	}
	if readAux && naux > 0 {
		apath := filepath.Join(outdir, frameFile("a", frame))
		if _, statErr := os.Stat(apath); statErr == nil {
			_, arows, aerr := readGridFile(apath, naux)
			if aerr != nil {
				return nil, fmt.Errorf("frame %d aux: %w", frame, aerr)
			}
			if len(arows) != mx {
				return nil, fmt.Errorf("frame %d aux: expected %d cells, found %d", frame, mx, len(arows))
			}
			for i, row := range arows {
				for m := 0; m < naux; m++ {
					state.Aux.Set(m, i, row[m])
				}
			}
		}
	}
	sol = NewSolution(state, domain)
	sol.SetT(t)
	return
}

// readValueFile parses n leading numeric fields, one per line
func readValueFile(path string, n int) (vals []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(vals) < n {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		var v float64
		if v, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		vals = append(vals, v)
	}
	if len(vals) < n {
		return nil, fmt.Errorf("%s: expected %d values, found %d", path, n, len(vals))
	}
	return
}

// readGridFile parses the five value grid header followed by rows of
// rowWidth numeric fields
func readGridFile(path string, rowWidth int) (header []float64, rows [][]float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(header) < 5 {
			var v float64
			if v, err = strconv.ParseFloat(fields[0], 64); err != nil {
				return nil, nil, fmt.Errorf("%s header: %w", path, err)
			}
			header = append(header, v)
			continue
		}
		if len(fields) < rowWidth {
			return nil, nil, fmt.Errorf("%s: short row with %d fields, expected %d", path, len(fields), rowWidth)
		}
		row := make([]float64, rowWidth)
		for m := 0; m < rowWidth; m++ {
			if row[m], err = strconv.ParseFloat(fields[m], 64); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		rows = append(rows, row)
	}
	err = sc.Err()
	return
}
