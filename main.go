// Package main renders official procurement documents (rulings, awards and
// committee invitations) as paginated PDFs with running page counts.
//
// Each document is read from <documents>/<id>.yaml. The PDF is written to a
// file or stdout, optionally mailed, or served over HTTP.
//
// Usage: documentos [-config file] [-o out.pdf] [-mail] <id>
//
//	documentos [-config file] -serve [-addr :8080]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"documentos/document"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	version = "1.0.0"

	configName = "config.yaml"
)

// ---------------------------------------------------------------------------
// Main
// ---------------------------------------------------------------------------

func main() {
	configPath := flag.String("config", "", "configuration file (default: "+configName+")")
	outPath := flag.String("o", "", "write the PDF to this file instead of stdout")
	mail := flag.Bool("mail", false, "send the PDF by mail")
	serve := flag.Bool("serve", false, "serve documents over HTTP")
	addr := flag.String("addr", "", "listen address for -serve (default: server.addr from the config)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: documentos [flags] <id>\n       documentos [flags] -serve [-addr :8080]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("documentos v%s\n", version)
		return
	}

	// Load configuration
	cfg, err := loadConfig(configName, *configPath)
	if err != nil {
		panic(err)
	}

	gen, err := document.NewGenerator(document.DirSource{Dir: cfg.Documents}, cfg.Document)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *serve {
		if err := listen(ctx, gen, listenAddr(cfg, *addr), cfg.Server.Timeout); err != nil {
			panic(err)
		}
		return
	}

	id := flag.Arg(0)
	if id == "" || flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := gen.Generate(ctx, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, document.Alert(err))
		os.Exit(1)
	}

	// Mailing without -o does not also dump the PDF to stdout
	if *outPath != "" || !*mail {
		if err := writePDF(data, *outPath, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *mail {
		if err := sendEmail(cfg, mailSubject(id),
			Attachment{Filename: documentFilename(id), Data: data},
		); err != nil {
			panic(err)
		}
	}
}

// listenAddr is the -addr override or else the configured address.
func listenAddr(cfg *Config, override string) string {
	if override != "" {
		return override
	}
	return cfg.Server.Addr
}

// listen serves documents until ctx is cancelled.
func listen(ctx context.Context, gen *document.Generator, addr string, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(gen, timeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	gen.Log.Infof("serving documents on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
