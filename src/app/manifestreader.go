package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// BatchJob is one render in a batch manifest. Paths are relative to the
// manifest. Palette "none" disables palette discovery; empty fields take the
// render defaults.
type BatchJob struct {
	File         string `json:"file"`
	Palette      string `json:"palette"`
	BPP          string `json:"bpp"`
	Candidate    int    `json:"candidate"`
	All          bool   `json:"all"`
	Sheet        bool   `json:"sheet"`
	Mode         string `json:"mode"`
	Offset       int    `json:"offset"`
	Count        int    `json:"count"`
	LittleEndian bool   `json:"littleendian"`
	InvertColors bool   `json:"invertcolors"`
	InvertIndex  bool   `json:"invertindex"`
	Shift        string `json:"shift"`
	Subtract     string `json:"subtract"`
	Scale        string `json:"scale"`
	Upscale      int    `json:"upscale"`
	Format       string `json:"format"`
}

// StreamManifest opens the JSON manifest and streams jobs as they are
// decoded. Errors are sent on errs and name the failing job and its byte
// offset.
func StreamManifest(path string) (<-chan BatchJob, <-chan error) {
	out := make(chan BatchJob)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		r, err := os.Open(path)
		if err != nil {
			errs <- err
			return
		}
		defer r.Close()

		dec := json.NewDecoder(bufio.NewReaderSize(r, 1<<16))
		dec.DisallowUnknownFields()

		tok, err := dec.Token()
		if err != nil {
			errs <- err
			return
		}
		if d, ok := tok.(json.Delim); !ok || d != '[' {
			errs <- fmt.Errorf("expected top-level JSON array")
			return
		}

		var job BatchJob
		for idx := 0; dec.More(); idx++ {
			offset := dec.InputOffset()
			job = BatchJob{}
			if err := dec.Decode(&job); err != nil {
				errs <- fmt.Errorf("job %d at byte %d: %w", idx, offset, err)
				return
			}
			out <- job
		}

		if _, err := dec.Token(); err != nil {
			errs <- err
			return
		}
	}()

	return out, errs
}
