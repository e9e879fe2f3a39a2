package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/gobeaver/inputkit"
	"github.com/gobeaver/inputkit/internal/logger"
	"github.com/gobeaver/inputkit/upload"
	"go.uber.org/zap"
)

const menuText = `Please select one of the following options to continue :
1 - Upload a file
2 - Verify file exists
3 - Get file URL
4 - List uploads
0 - Exit
`

// menu is the interactive front end of the upload store. It reads one
// answer per line and asks again until the answer is usable.
type menu struct {
	store *upload.Store
	kit   *inputkit.Toolkit
	in    *bufio.Scanner
	out   io.Writer
}

func newMenu(store *upload.Store, kit *inputkit.Toolkit, in io.Reader, out io.Writer) *menu {
	return &menu{
		store: store,
		kit:   kit,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// run shows the menu until the user exits, input ends or ctx is cancelled
func (m *menu) run(ctx context.Context) error {
	fmt.Fprintln(m.out, "Welcome to the super secure file upload tool !")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, menuText)
		choice, ok := m.prompt("Your input ? [0-4] ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "0":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		case "1":
			m.upload(ctx)
		case "2":
			m.verify(ctx)
		case "3":
			m.link()
		case "4":
			m.list()
		default:
			fmt.Fprintln(m.out, "Invalid choice, please enter a number between 0 and 4.")
		}
	}
}

// prompt writes question and returns the next trimmed line. ok is false once
// input is exhausted.
func (m *menu) prompt(question string) (string, bool) {
	fmt.Fprint(m.out, question)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) upload(ctx context.Context) {
	log := logger.Get(ctx)

	for {
		path, ok := m.prompt("Please enter the path to an image or video file : ")
		if !ok {
			return
		}

		rec, err := m.store.Upload(ctx, path)
		switch {
		case err == nil:
			log.Info("file uploaded",
				zap.String("id", rec.ID.String()),
				zap.String("path", rec.Path),
				zap.Stringer("kind", rec.Kind),
				zap.Int64("size", rec.Size))
			fmt.Fprintf(m.out, "File uploaded successfully, UUID : %s\n", rec.ID)
			return
		case upload.IsExist(err):
			fmt.Fprintf(m.out, "This file is already uploaded, UUID : %s\n", rec.ID)
			return
		case errors.Is(err, upload.ErrInvalidContent):
			fmt.Fprintln(m.out, "Invalid file contents !")
		case errors.Is(err, context.Canceled):
			return
		default:
			log.Debug("upload rejected", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(m.out, "Error : %v\n", err)
		}
	}
}

// askUUID prompts until the answer is a well-formed version-5 UUID
func (m *menu) askUUID() (string, bool) {
	for {
		id, ok := m.prompt("Please enter the UUID of the file : ")
		if !ok {
			return "", false
		}
		if m.kit.ValidateUUID(id) {
			return id, true
		}
		fmt.Fprintln(m.out, "Invalid UUID !")
	}
}

func (m *menu) verify(ctx context.Context) {
	id, ok := m.askUUID()
	if !ok {
		return
	}

	rec, err := m.store.Verify(ctx, id)
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "File %s exists, kind : %s.\n", id, rec.Kind)
	case upload.IsNotExist(err):
		fmt.Fprintf(m.out, "File %s doesn't exist.\n", id)
	case errors.Is(err, upload.ErrContentChanged):
		fmt.Fprintf(m.out, "File %s exists but its content has changed.\n", id)
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(m.out, "File %s was uploaded but is no longer on disk.\n", id)
	default:
		logger.Get(ctx).Warn("verify failed", zap.String("id", id), zap.Error(err))
		fmt.Fprintf(m.out, "Error : %v\n", err)
	}
}

func (m *menu) link() {
	id, ok := m.askUUID()
	if !ok {
		return
	}

	link, err := m.store.URL(id)
	if err != nil {
		if upload.IsNotExist(err) {
			fmt.Fprintf(m.out, "File %s doesn't exist.\n", id)
			return
		}
		fmt.Fprintf(m.out, "Error : %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Your link : %s\n", link)
}

func (m *menu) list() {
	pattern, ok := m.prompt("Path pattern (empty for all) : ")
	if !ok {
		return
	}

	records, err := m.store.List(pattern)
	if err != nil {
		fmt.Fprintf(m.out, "Error : %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No uploads.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(m.out, "%s  %-5s  %8d  %s  %s\n",
			rec.ID, rec.Kind, rec.Size, upload.FormatChecksum(rec.Checksum), rec.Path)
	}
}
