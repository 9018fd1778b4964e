package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"sortlab/dataset"
	"sortlab/kvdb"
	"sortlab/logutil"
	"sortlab/sortcore"
)

// StoreConfig 실행 기록 저장소. Dir 이 비어 있으면 출력 디렉토리 아래 "results.<backend>".
type StoreConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
}

// Config 하네스 전체 설정
type Config struct {
	// 생성/실행할 입력 크기
	Sizes []int `toml:"sizes"`
	// asc, desc, rand
	Orders []string `toml:"orders"`
	// 알고리즘 표 이름. 비어 있으면 전체
	Algorithms []string `toml:"algorithms"`

	SeedBase int64 `toml:"seed-base"`

	// 이 크기 이하 입력은 입력과 정렬 결과를 모두 출력 파일에 쓴다
	FullEchoMax int `toml:"full-echo-max"`
	// 큰 입력 에코에서 앞/뒤로 보여줄 개수
	EchoMaxShow int `toml:"echo-max-show"`

	Store StoreConfig       `toml:"store"`
	Log   logutil.LogConfig `toml:"log"`
}

// Default 과제 기본값: 50 ~ 10000, 세 가지 순서, 다섯 가지 알고리즘
func Default() Config {
	algs := sortcore.Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name
	}
	orders := make([]string, 0, 3)
	for _, o := range dataset.Orders() {
		orders = append(orders, o.String())
	}
	return Config{
		Sizes:       []int{50, 1000, 2000, 5000, 10000},
		Orders:      orders,
		Algorithms:  names,
		SeedBase:    dataset.DefaultSeedBase,
		FullEchoMax: 50,
		EchoMaxShow: 20,
		Store:       StoreConfig{Backend: kvdb.BackendBbolt},
		Log:         logutil.DefaultLogConfig(),
	}
}

// LoadFile 기본값 위에 TOML 파일을 덮어쓴 뒤 검증
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decode %s", path)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("config: sizes is empty")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return errors.Newf("config: size %d must be positive", n)
		}
	}
	if _, err := c.ParsedOrders(); err != nil {
		return errors.Wrap(err, "config")
	}
	if _, err := c.ParsedAlgorithms(); err != nil {
		return errors.Wrap(err, "config")
	}
	if !kvdb.ValidBackend(c.Store.Backend) {
		return errors.Wrapf(kvdb.ErrUnknownBackend, "config: %q", c.Store.Backend)
	}
	if c.FullEchoMax < 0 || c.EchoMaxShow <= 0 {
		return errors.Newf("config: invalid echo limits %d/%d", c.FullEchoMax, c.EchoMaxShow)
	}
	return nil
}

func (c *Config) ParsedOrders() ([]dataset.Order, error) {
	out := make([]dataset.Order, 0, len(c.Orders))
	for _, name := range c.Orders {
		o, err := dataset.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (c *Config) ParsedAlgorithms() ([]sortcore.Algorithm, error) {
	if len(c.Algorithms) == 0 {
		return sortcore.Algorithms(), nil
	}
	out := make([]sortcore.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := sortcore.LookupAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
