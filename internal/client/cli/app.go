package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/config"
	"github.com/dmitrijs2005/storeadmin/internal/client/i18n"
	"github.com/dmitrijs2005/storeadmin/internal/client/prompt"
	"github.com/dmitrijs2005/storeadmin/internal/client/resources"
	"github.com/dmitrijs2005/storeadmin/internal/client/screen"
	"github.com/dmitrijs2005/storeadmin/internal/client/services"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
)

const historyLimit = 20

type App struct {
	config   *config.Config
	log      logging.Logger
	registry *resources.Registry
	service  services.RecordService
	repos    *client.Repositories
	cat      i18n.Catalog
	driver   prompt.Driver
	reader   *bufio.Reader
	out      io.Writer

	screens map[string]*screen.Screen
	current *screen.Screen
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	registry := resources.Builtin()
	if c.DescriptorsFile != "" {
		if err := registry.LoadFile(c.DescriptorsFile); err != nil {
			return nil, err
		}
	}
	if _, err := registry.Get(c.DefaultResource); err != nil {
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, c.JournalPath, c.JournalLimit, log)
	if err != nil {
		log.Error(ctx, "error initializing journal", "path", c.JournalPath, "err", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)
	svc := services.NewRecordService(apiClient, repos.Journal, log)

	reader := bufio.NewReader(os.Stdin)
	driver := prompt.New(os.Stdin, os.Stdout, reader)

	return newApp(c, log, registry, svc, repos, driver, reader, os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, registry *resources.Registry, svc services.RecordService,
	repos *client.Repositories, driver prompt.Driver, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		config:   c,
		log:      log,
		registry: registry,
		service:  svc,
		repos:    repos,
		cat:      i18n.For(c.Locale),
		driver:   driver,
		reader:   reader,
		out:      out,
		screens:  map[string]*screen.Screen{},
	}
}

// Run opens the default resource and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	printlnFn("storeadmin (type 'help' for commands)")
	_ = a.Use(ctx, a.config.DefaultResource)
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the journal database.
func (a *App) Close() error {
	if a.repos == nil {
		return nil
	}
	return a.repos.Close()
}

func (a *App) status() string {
	if a.current == nil {
		return ""
	}
	st := a.current.State()
	return fmt.Sprintf("%s:%s", a.current.Descriptor().Resource, st.Mode)
}

func (a *App) screenFor(name string) (*screen.Screen, error) {
	if s, ok := a.screens[name]; ok {
		return s, nil
	}
	d, err := a.registry.Get(name)
	if err != nil {
		return nil, err
	}
	s := screen.New(d, a.service, a.cat, a.log)
	a.screens[name] = s
	return s, nil
}
