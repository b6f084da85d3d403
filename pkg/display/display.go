package display

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"syscall"

	"github.com/vertti/fileview/pkg/checksum"
	"github.com/vertti/fileview/pkg/lines"
	"github.com/vertti/fileview/pkg/output"
	"github.com/vertti/fileview/pkg/size"
)

// Display prints a file's metadata followed by its numbered contents.
type Display struct {
	Path     string             // path as given by the user
	Checksum checksum.Algorithm // --checksum: add a digest line to the information block
	Human    bool               // --human: append a human-readable size
	FS       FileSystem         // injected for testing, defaults to RealFileSystem
	Out      io.Writer          // information and content blocks, defaults to os.Stdout
	Err      io.Writer          // error lines, defaults to os.Stderr
	Logger   *slog.Logger       // diagnostics, discarded when nil
}

// Run validates the path, prints the information block and then the content block.
// Every failure is printed to Err as it happens and returned as an *Error.
// A metadata failure does not stop the content block.
func (d *Display) Run() error {
	d.setDefaults()

	d.Logger.Debug("stat", "path", d.Path)
	info, err := d.FS.Stat(d.Path)
	if err != nil {
		if isNotExist(err) {
			return d.report(&Error{Kind: KindNotFound, Path: d.Path, Err: err})
		}
		return d.report(&Error{Kind: KindMetadata, Path: d.Path, Err: err})
	}

	if !info.Mode().IsRegular() {
		d.Logger.Debug("rejecting non-regular file", "path", d.Path, "mode", info.Mode().String())
		return d.report(&Error{Kind: KindNotRegular, Path: d.Path})
	}

	metaErr := d.printInfo(info)
	readErr := d.printContents()

	switch {
	case metaErr != nil && readErr != nil:
		return errors.Join(metaErr, readErr)
	case metaErr != nil:
		return metaErr
	default:
		return readErr
	}
}

// isNotExist reports whether a stat error means nothing exists at the path:
// a missing entry, a parent that is not a directory, or a symlink loop.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}

func (d *Display) setDefaults() {
	if d.FS == nil {
		d.FS = &RealFileSystem{}
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Err == nil {
		d.Err = os.Stderr
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

func (d *Display) report(e *Error) error {
	d.Logger.Debug("display failed", "kind", e.Kind.String(), "path", e.Path, "error", e.Err)
	output.PrintError(d.Err, e.Message())
	return e
}

func (d *Display) printInfo(info fs.FileInfo) error {
	w := d.Out
	_, _ = fmt.Fprintln(w, "=== File Information ===")
	_, _ = fmt.Fprintf(w, "File name: %s\n", info.Name())

	abs, err := d.FS.Abs(d.Path)
	if err != nil {
		return d.report(&Error{Kind: KindMetadata, Path: d.Path, Err: fmt.Errorf("resolving absolute path: %w", err)})
	}
	_, _ = fmt.Fprintf(w, "Absolute path: %s\n", abs)

	if d.Human {
		_, _ = fmt.Fprintf(w, "File size: %d bytes (%s)\n", info.Size(), size.Format(info.Size()))
	} else {
		_, _ = fmt.Fprintf(w, "File size: %d bytes\n", info.Size())
	}

	count, digest, err := d.scan()
	if err != nil {
		return d.report(&Error{Kind: KindMetadata, Path: d.Path, Err: err})
	}
	d.Logger.Debug("counted lines", "path", abs, "lines", count, "size", info.Size())
	_, _ = fmt.Fprintf(w, "Number of lines: %d\n", count)

	if digest != "" {
		_, _ = fmt.Fprintf(w, "Checksum (%s): %s\n", d.Checksum, digest)
	}
	return nil
}

// scan makes the counting pass over the file, hashing it on the way when a checksum is requested.
func (d *Display) scan() (count int, digest string, err error) {
	f, err := d.FS.Open(d.Path)
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	h := d.Checksum.NewHasher()
	if h != nil {
		r = io.TeeReader(f, h)
	}

	count, err = lines.Count(r)
	if err != nil {
		return 0, "", err
	}
	if h == nil {
		return count, "", nil
	}
	return count, hex.EncodeToString(h.Sum(nil)), nil
}

func (d *Display) printContents() error {
	f, err := d.FS.Open(d.Path)
	if err != nil {
		return d.report(&Error{Kind: KindRead, Path: d.Path, Err: err})
	}
	defer func() {
		_ = f.Close()
		d.Logger.Debug("closed", "path", d.Path)
	}()

	w := d.Out
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "=== File Contents ===")
	_, _ = fmt.Fprintln(w, output.Divider)

	s := lines.NewScanner(f)
	for s.Scan() {
		output.PrintLine(w, s.Number(), s.Text())
	}
	if err := s.Err(); err != nil {
		return d.report(&Error{Kind: KindRead, Path: d.Path, Err: err})
	}

	_, _ = fmt.Fprintln(w, output.Divider)
	_, _ = fmt.Fprintln(w, "End of file.")
	d.Logger.Debug("printed contents", "path", d.Path, "lines", s.Number())
	return nil
}
