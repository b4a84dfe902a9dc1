package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/roylee0704/gron"

	"moodd/internal/models"
	"moodd/internal/providers"
	"moodd/internal/services"
	"moodd/internal/storage/interfaces"
	"moodd/internal/structures"
)

const backupDir = "backups"

// Scheduler writes periodic compressed snapshots of the journal next to the
// live store. The live files are already written through on every mutation;
// backups only guard against a corrupted or lost moods.dat.
type Scheduler struct {
	config     *structures.Config
	logger     providers.Logger
	service    services.JournalServiceInterface
	compressor interfaces.CompressorInterface
	metrics    providers.MetricsProviderInterface
	cron       *gron.Cron
	opsMu      sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Persistence.BackupInterval

	s.cron.AddFunc(gron.Every(interval), func() {
		if err := s.Backup(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while writing backup: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Journal backup written")
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Backup snapshots the current journal into a timestamped file and prunes
// old backups beyond the retention count.
func (s *Scheduler) Backup() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()

	dir := filepath.Join(s.config.Persistence.Dir, backupDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	envelope := models.MoodFileV2{
		Version: models.PersistenceVersion,
		Moods:   s.service.Moods(),
	}
	jsonData, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	data, err := s.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("journal-%s.dat", start.Format("20060102-150405"))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return err
	}

	s.metrics.ObservePersistenceDuration(time.Since(start))
	return s.prune(dir)
}

// prune keeps the newest BackupKeep files. Names sort chronologically.
func (s *Scheduler) prune(dir string) error {
	keep := s.config.Persistence.BackupKeep
	if keep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "journal-") {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.JournalServiceInterface, compressor interfaces.CompressorInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:     config,
		logger:     logger,
		service:    service,
		compressor: compressor,
		metrics:    metrics,
	}
}
