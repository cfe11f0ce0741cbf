// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/chunkwriter/fault"
)

// errors for the follow loop
var (
	ErrFileRemoved       = fault.NotFoundError("followed file was removed")
	ErrFollowInterrupted = fault.ProcessError("follow interrupted")
)

// waits for a file to grow
type follower struct {
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	removed  chan struct{}
	done     chan struct{}
}

func newFollower(fileName string) (*follower, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	err = watcher.Add(filePath)
	if nil != err {
		watcher.Close()
		return nil, err
	}

	f := &follower{
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		removed:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go f.run()
	return f, nil
}

func (f *follower) run() {
	for {
		select {
		case <-f.done:
			return
		case _, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(f.filePath) {
				continue
			}
			if eventFileRemove(event) {
				send(f.removed)
				return
			}
			if eventFileChange(event) {
				send(f.change)
			}
		}
	}
}

// Wait - block until the file changes, the timeout expires or
// interrupt is closed
//
// the timeout covers writers whose events were coalesced; a nil
// interrupt never fires
func (f *follower) Wait(timeout time.Duration, interrupt <-chan struct{}) error {
	select {
	case <-interrupt:
		return ErrFollowInterrupted
	case <-f.change:
		return nil
	case <-f.removed:
		return ErrFileRemoved
	case <-time.After(timeout):
		return nil
	}
}

func (f *follower) Close() {
	close(f.done)
	f.watcher.Close()
}

// non-blocking, one pending event is enough
func send(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func eventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func eventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write
}
