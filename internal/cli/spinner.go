package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/curlviz/pkg/render/sink"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// exportSpinner animates a "Rendering PNG game.png" line while a stream
// encodes. Only the goroutine calling run writes to out.
type exportSpinner struct {
	out    io.Writer
	format sink.Format
	path   string
}

func newExportSpinner(stream sink.Stream) *exportSpinner {
	return &exportSpinner{out: os.Stderr, format: stream.Format(), path: stream.Path()}
}

func (s *exportSpinner) message() string {
	return fmt.Sprintf("Rendering %s %s", strings.ToUpper(string(s.format)), s.path)
}

// run calls fn and animates until it returns. The line is cleared before run
// returns. If ctx ends first, run still waits for fn, since an interrupted
// export would leave its temporary file behind, and then returns ctx.Err().
func (s *exportSpinner) run(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	defer s.clear()

	msg := StyleDim.Render(s.message())
	for i := 0; ; i++ {
		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			if err := <-done; err != nil {
				return err
			}
			return ctx.Err()
		case <-ticker.C:
			fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), msg)
		}
	}
}

func (s *exportSpinner) clear() {
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message())+2))
}
