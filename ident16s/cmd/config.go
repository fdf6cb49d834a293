// Copyright © 2023-2024 Marco van Zwetselaar <io@zwets.it>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/shenwei356/util/pathutil"
)

const configFileName = ".ident-16s.toml"

// FileConfig holds per-user defaults read from ~/.ident-16s.toml.
// Command line flags override these.
type FileConfig struct {
	DB      string `toml:"db"`
	Barrnap string `toml:"barrnap"`
	Blastn  string `toml:"blastn"`
}

// loadFileConfig reads the per-user config file. A missing file is not an
// error; an unparsable one is.
func loadFileConfig() (*FileConfig, error) {
	conf := &FileConfig{}

	home, err := homedir.Dir()
	if err != nil {
		return conf, nil
	}
	file := filepath.Join(home, configFileName)

	existed, err := pathutil.Exists(file)
	if err != nil || !existed {
		return conf, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	if err = toml.Unmarshal(data, conf); err != nil {
		return nil, errors.Wrap(err, file)
	}
	return conf, nil
}
