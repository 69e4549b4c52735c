package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/app"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/gesture"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/pdf"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/server"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/store"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/tray"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/viewer"
)

func main() {
	width := flag.Int("width", 1200, "window width in pixels")
	height := flag.Int("height", 800, "window height in pixels")
	cameraID := flag.Int("camera", 0, "camera device ID")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "", "bookmark database path (default ~/.inconvenientpdfreader/reader.db)")
	noTray := flag.Bool("no-tray", false, "run without the system tray menu")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.pdf>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	pdfPath, err := resolvePDFPath(flag.Arg(0))
	if err != nil {
		log.Fatalf("Invalid PDF path: %v", err)
	}

	fmt.Println("Inconvenient PDF Reader - lick your finger to turn pages")

	st, err := openStore(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	log.Printf("Loading %s", pdfPath)
	doc, err := pdf.Open(pdfPath)
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	log.Printf("Loaded %d pages", doc.PageCount())

	// Resume from the last bookmark, if any.
	if page, ok, err := st.Bookmarks().Get(pdfPath); err != nil {
		log.Printf("Failed to read bookmark: %v", err)
	} else if ok {
		doc.SetPage(page)
		log.Printf("Resuming at page %d", page+1)
	}

	v := viewer.New("Inconvenient PDF Reader", *width, *height)
	defer v.Close()

	a := app.New(app.Config{
		Store:    st,
		Document: doc,
		Viewer:   v,
		CameraID: *cameraID,
		Gesture:  gesture.DefaultConfig(),
	})

	srv := server.New(server.Config{
		Provider: a,
		Store:    st,
	})
	a.SetHub(srv.Hub())

	go func() {
		log.Printf("Starting server on %s", *addr)
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Printf("Server failed: %v", err)
		}
	}()

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start reader: %v", err)
	}
	defer a.Stop()

	if *noTray {
		// Without the tray there is no event loop to block on, so wait for
		// the viewer to ask to quit.
		done := make(chan struct{})
		a.OnQuit(func() { close(done) })
		<-done
		return
	}

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		log.Printf("Gesture page turning enabled: %v", enabled)
	})
	a.OnTurn(func(direction string, page, total int) {
		t.SetLastTurn(direction)
		t.SetPage(fmt.Sprintf("%d / %d", page+1, total))
	})
	a.OnQuit(t.Quit)

	// Blocks until the tray quits, via its menu or the viewer's ESC key.
	t.Run()
}

// resolvePDFPath validates the positional argument: the file must exist and
// carry a .pdf extension.
func resolvePDFPath(arg string) (string, error) {
	path, err := filepath.Abs(arg)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", fmt.Errorf("%s is not a .pdf file", path)
	}
	return path, nil
}

// openStore opens the bookmark database, creating the data directory when
// the default path is used.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dbDir := filepath.Join(homeDir, ".inconvenientpdfreader")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, err
		}
		path = filepath.Join(dbDir, "reader.db")
	}
	return store.New(path)
}
