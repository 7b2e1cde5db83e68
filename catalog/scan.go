package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/bodgit/minipng"
)

// Extension is the file extension Scan looks for.
const Extension = ".mp"

var errCancelled = errors.New("catalog: scan cancelled")

type decoded struct {
	path string
	b    []byte
	f    *minipng.File
}

func findFiles(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return errCancelled
			}

			// Ignore any hidden files or directories, but not the base itself
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || filepath.Ext(file) != Extension {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errCancelled
			}

			return nil
		})
	}()
	return out, errc
}

func (db *DB) decodeWorker(ctx context.Context, in <-chan string, out chan<- decoded, wg *sync.WaitGroup) <-chan error {
	errc := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(errc)
		for file := range in {
			b, err := minipng.ReadFile(file)
			if err != nil {
				errc <- err
				return
			}

			f, err := minipng.Parse(b)
			if err == nil {
				err = minipng.Validate(f)
			}
			if err != nil {
				var mfe *minipng.MalformedFileError
				if !errors.As(err, &mfe) {
					errc <- err
					return
				}
				db.logger.Printf("Skipping \"%s\": %s\n", file, err)
				continue
			}

			select {
			case out <- decoded{path: file, b: b, f: f}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return errc
}

func (db *DB) writer(in <-chan decoded) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for d := range in {
			if err := db.Add(d.path, d.b, d.f); err != nil {
				errc <- err
				return
			}
			db.logger.Printf("Added \"%s\"\n", d.path)
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path and adds every valid Mini-PNG file it finds to the
// catalog, decoding with the given number of workers. Malformed files are
// logged and skipped.
func (db *DB) Scan(ctx context.Context, path string, workers int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	files, errc := findFiles(ctx, dir)
	errcList = append(errcList, errc)

	var wg sync.WaitGroup
	results := make(chan decoded)
	for i := 0; i < workers; i++ {
		errcList = append(errcList, db.decodeWorker(ctx, files, results, &wg))
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	errcList = append(errcList, db.writer(results))

	return waitForPipeline(errcList...)
}
