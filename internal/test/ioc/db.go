// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testioc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/devcollab/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db     *egorm.Component
	dbOnce sync.Once

	configOnce sync.Once
	configErr  error
)

func InitDB() *egorm.Component {
	dbOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		ioc.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	})
	return db
}

// loadConfig 从当前目录往上找到仓库根目录，读取 config/local.yaml
func loadConfig() error {
	configOnce.Do(func() {
		dir, err := os.Getwd()
		if err != nil {
			configErr = err
			return
		}
		for {
			if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				configErr = errors.New("没有找到仓库根目录")
				return
			}
			dir = parent
		}
		content, err := os.ReadFile(filepath.Join(dir, "config", "local.yaml"))
		if err != nil {
			configErr = err
			return
		}
		configErr = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
	})
	return configErr
}
