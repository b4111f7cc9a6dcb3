package uploads

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch keeps the listing index current for files created or removed
// outside this process (deploys dropping assets, manual cleanup). Stop the
// watcher with the returned close function.
func (s *Store) Watch() (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					if err := s.rescan(); err != nil {
						log.Printf("uploads: rescan after %s failed: %v", event.Op, err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("uploads: watcher error: %v", err)
			}
		}
	}()

	return watcher.Close, nil
}
