// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package filestore provides a hedgecontrol.Store that persists its
// values to a small YAML file.  This is the durable storage the
// command-line client uses by default, playing the part a browser's
// local storage plays for a web page.
//
// The file is re-read on every Get and rewritten on every Set, so
// several processes sharing a file see each other's writes.  Writes
// go to a temporary file that is renamed into place.
package filestore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"gopkg.in/yaml.v2"
)

// DefaultPath returns the default location of the state file,
// $XDG_CONFIG_HOME/hedgectl/state.yaml or its platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hedgectl", "state.yaml"), nil
}

// New creates a store backed by the named file.  The file and its
// directory need not exist yet; they are created on the first Set.
func New(path string) hedgecontrol.Store {
	return &fileStore{path: path}
}

type fileStore struct {
	path string
	lock sync.Mutex
}

// load reads the whole file.  A missing file is an empty store.
func (s *fileStore) load() (map[string]string, error) {
	values := make(map[string]string)
	bytes, err := ioutil.ReadFile(s.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err == nil {
		err = yaml.Unmarshal(bytes, &values)
	}
	return values, err
}

func (s *fileStore) Get(key string) (string, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (s *fileStore) Set(key, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	bytes, err := yaml.Marshal(values)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	tmp, err := ioutil.TempFile(dir, ".state-*.yaml")
	if err != nil {
		return err
	}
	_, err = tmp.Write(bytes)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
	}
	return err
}
