package verify

import (
	"context"
	"fmt"
	"sort"
	"time"

	"font-catalog/core/catalog"
	"font-catalog/core/provider/fontdb"
	"font-catalog/feature/verify/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service compares a source scan against the font registry.
type Service struct {
	source catalog.Provider
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new verify service.
func NewService(source catalog.Provider, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		db:     db,
		logger: logger,
	}
}

// faceKey identifies a face across snapshots.
func faceKey(family, face string) string {
	return family + "/" + face
}

type scannedFace struct {
	info catalog.FaceInfo
}

func indexFaces(families []catalog.FamilyInfo) map[string]scannedFace {
	out := make(map[string]scannedFace)
	for _, fam := range families {
		for _, face := range fam.Faces {
			out[faceKey(fam.Name, face.Name)] = scannedFace{info: face}
		}
	}
	return out
}

// Check scans the configured source and reconciles it against the registry.
func (s *Service) Check(ctx context.Context) (*models.Report, error) {
	startTime := time.Now()
	s.logger.Info("Starting registry verification")

	scanned, err := s.source.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning font source: %w", err)
	}
	registered, err := fontdb.New(s.db).Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	scannedIdx := indexFaces(scanned)
	registeredIdx := indexFaces(registered)

	report := &models.Report{
		TotalScanned:    len(scannedIdx),
		TotalRegistered: len(registeredIdx),
	}

	for key, face := range scannedIdx {
		reg, ok := registeredIdx[key]
		if !ok {
			report.Unregistered = append(report.Unregistered, key)
			continue
		}
		if details := compareFaces(face.info, reg.info); len(details) > 0 {
			report.Mismatches = append(report.Mismatches, models.Mismatch{Face: key, Details: details})
		}
	}
	for key := range registeredIdx {
		if _, ok := scannedIdx[key]; !ok {
			report.Missing = append(report.Missing, key)
		}
	}

	// Deterministic output regardless of map iteration order.
	sort.Strings(report.Unregistered)
	sort.Strings(report.Missing)
	sort.Slice(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].Face < report.Mismatches[j].Face
	})

	report.GeneratedAt = time.Now().Format(time.RFC3339)
	report.ExecutionTime = time.Since(startTime).String()
	s.logger.Info("Registry verification completed",
		zap.Int("scanned", report.TotalScanned),
		zap.Int("registered", report.TotalRegistered),
		zap.Int("unregistered", len(report.Unregistered)),
		zap.Int("missing", len(report.Missing)),
		zap.Int("mismatches", len(report.Mismatches)))

	return report, nil
}

// Sync scans the configured source and overwrites the registry with the result.
func (s *Service) Sync(ctx context.Context) (*models.Report, error) {
	scanned, err := s.source.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning font source: %w", err)
	}
	if err := fontdb.Replace(ctx, s.db, scanned); err != nil {
		return nil, err
	}
	s.logger.Info("Registry synced", zap.Int("families", len(scanned)))
	return s.Check(ctx)
}

func compareFaces(scanned, registered catalog.FaceInfo) []string {
	var details []string
	if scanned.Weight != registered.Weight {
		details = append(details, fmt.Sprintf("weight: scanned %d, registered %d", scanned.Weight, registered.Weight))
	}
	if scanned.Style != registered.Style {
		details = append(details, fmt.Sprintf("style: scanned %s, registered %s", scanned.Style, registered.Style))
	}
	if scanned.Stretch != registered.Stretch {
		details = append(details, fmt.Sprintf("stretch: scanned %d, registered %d", scanned.Stretch, registered.Stretch))
	}
	if scanned.Filename != registered.Filename {
		details = append(details, fmt.Sprintf("filename: scanned %q, registered %q", scanned.Filename, registered.Filename))
	}
	return details
}
