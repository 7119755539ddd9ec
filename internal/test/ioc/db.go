package testioc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/hirebook/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	configOnce sync.Once
)

func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	LoadConfig()
	ioc.WaitForDBSetup(econf.GetStringMapString("mysql")["dsn"])
	db = egorm.Load("mysql").Build()
	return db
}

// LoadConfig 从模块根目录加载 config/local.yaml
func LoadConfig() {
	configOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			panic(err)
		}
		content, err := os.ReadFile(filepath.Join(root, "config", "local.yaml"))
		if err != nil {
			panic(err)
		}
		err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
		if err != nil {
			panic(err)
		}
	})
}

func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("找不到 go.mod")
		}
		dir = parent
	}
}
