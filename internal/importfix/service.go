package importfix

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	fixingReportTemplateConstant          = "Fixing: %s\n"
	targetDirectoryMissingMessageConstant = "Target directory not found; skipping"
	fileSkippedMessageConstant            = "No migration required"
	fileFixedMessageConstant              = "Fixed client import"
	fileUnchangedMessageConstant          = "Guards matched but no rule applied"
	dryRunMessageConstant                 = "Dry run; file left untouched"
	fileFailedMessageConstant             = "Unable to fix file"
	fixCompletedMessageConstant           = "Import fix completed"
	fixCancelledMessageConstant           = "Import fix cancelled"
	filePathFieldConstant                 = "file"
	targetDirectoryFieldConstant          = "target_directory"
	statusFieldConstant                   = "status"
	appliedRulesFieldConstant             = "rules"
	fixedCountFieldConstant               = "fixed_files"
	skippedCountFieldConstant             = "skipped_files"
	missingDirectoriesFieldConstant       = "missing_directories"
	failureCountFieldConstant             = "failures"
)

// FileOutcome reports how one file was handled.
type FileOutcome struct {
	Path         string
	Status       FileStatus
	AppliedRules []string
	Written      bool
}

// Summary aggregates a Fix run.
type Summary struct {
	FixedFiles         []string
	SkippedFiles       []string
	MissingDirectories []string
	Failures           []error
}

// Service finds candidate files and rewrites them in place.
type Service struct {
	logger     *zap.Logger
	fileSystem FileSystem
	reporter   Reporter
}

// NewService constructs a Service. Nil collaborators fall back to a no-op logger, the OS filesystem,
// and a standard output reporter.
func NewService(logger *zap.Logger, fileSystem FileSystem, reporter Reporter) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}
	if reporter == nil {
		reporter = NewWriterReporter(nil)
	}
	return &Service{logger: logger, fileSystem: fileSystem, reporter: reporter}
}

// FixFile migrates a single file using the rewrite values of configuration.
func (service *Service) FixFile(path string, configuration Configuration) (FileOutcome, error) {
	sanitized := configuration.Sanitize()
	rewriter, rewriterError := NewRewriter(sanitized)
	if rewriterError != nil {
		return FileOutcome{}, rewriterError
	}
	return service.fixFile(path, rewriter, sanitized.DryRun)
}

// Fix walks every target directory below the base directory and migrates each matching file.
// Missing directories are logged and skipped; per-file failures are collected and returned joined
// after the remaining files have been processed.
func (service *Service) Fix(executionContext context.Context, configuration Configuration) (Summary, error) {
	if executionContext == nil {
		executionContext = context.Background()
	}

	sanitized := configuration.Sanitize()
	if validationError := sanitized.Validate(); validationError != nil {
		return Summary{}, validationError
	}

	rewriter, rewriterError := NewRewriter(sanitized)
	if rewriterError != nil {
		return Summary{}, rewriterError
	}

	summary := Summary{}
	var cancellationError error

	for _, targetDirectory := range sanitized.TargetDirectories {
		if contextError := executionContext.Err(); contextError != nil {
			cancellationError = contextError
			break
		}

		targetRoot := resolveTargetRoot(sanitized.BaseDirectory, targetDirectory)
		directoryInfo, statError := service.fileSystem.Stat(targetRoot)
		if statError != nil {
			if errors.Is(statError, fs.ErrNotExist) {
				service.logger.Info(targetDirectoryMissingMessageConstant, zap.String(targetDirectoryFieldConstant, targetRoot))
				summary.MissingDirectories = append(summary.MissingDirectories, targetRoot)
				continue
			}
			summary.Failures = append(summary.Failures, FileError{Path: targetRoot, Operation: fileOperationStatConstant, Err: statError})
			continue
		}
		if !directoryInfo.IsDir() {
			summary.Failures = append(summary.Failures, FileError{Path: targetRoot, Operation: fileOperationStatConstant, Err: ErrNotDirectory})
			continue
		}

		walkError := service.fileSystem.WalkDir(targetRoot, func(path string, directoryEntry fs.DirEntry, walkError error) error {
			if contextError := executionContext.Err(); contextError != nil {
				return contextError
			}
			if walkError != nil {
				summary.Failures = append(summary.Failures, FileError{Path: path, Operation: fileOperationWalkConstant, Err: walkError})
				return nil
			}
			if directoryEntry.IsDir() || !strings.HasSuffix(directoryEntry.Name(), sanitized.FileExtension) {
				return nil
			}

			outcome, fileError := service.fixFile(path, rewriter, sanitized.DryRun)
			if fileError != nil {
				service.logger.Warn(fileFailedMessageConstant, zap.String(filePathFieldConstant, path), zap.Error(fileError))
				summary.Failures = append(summary.Failures, fileError)
				return nil
			}

			if outcome.Status == FileStatusFixed {
				summary.FixedFiles = append(summary.FixedFiles, path)
			} else {
				summary.SkippedFiles = append(summary.SkippedFiles, path)
			}
			return nil
		})
		if walkError != nil {
			if errors.Is(walkError, context.Canceled) || errors.Is(walkError, context.DeadlineExceeded) {
				cancellationError = walkError
				break
			}
			summary.Failures = append(summary.Failures, FileError{Path: targetRoot, Operation: fileOperationWalkConstant, Err: walkError})
		}
	}

	if cancellationError != nil {
		service.logger.Warn(fixCancelledMessageConstant, zap.Error(cancellationError))
	}

	service.logger.Info(
		fixCompletedMessageConstant,
		zap.Int(fixedCountFieldConstant, len(summary.FixedFiles)),
		zap.Int(skippedCountFieldConstant, len(summary.SkippedFiles)),
		zap.Strings(missingDirectoriesFieldConstant, summary.MissingDirectories),
		zap.Int(failureCountFieldConstant, len(summary.Failures)),
	)

	runErrors := append([]error(nil), summary.Failures...)
	if cancellationError != nil {
		runErrors = append(runErrors, cancellationError)
	}
	return summary, errors.Join(runErrors...)
}

func (service *Service) fixFile(path string, rewriter *Rewriter, dryRun bool) (FileOutcome, error) {
	content, readError := service.fileSystem.ReadFile(path)
	if readError != nil {
		return FileOutcome{}, FileError{Path: path, Operation: fileOperationReadConstant, Err: readError}
	}

	result := rewriter.Rewrite(string(content))
	outcome := FileOutcome{Path: path, Status: result.Status, AppliedRules: result.AppliedRules}

	if result.Status != FileStatusFixed {
		service.logger.Debug(fileSkippedMessageConstant, zap.String(filePathFieldConstant, path), zap.String(statusFieldConstant, string(result.Status)))
		return outcome, nil
	}

	service.reporter.Printf(fixingReportTemplateConstant, path)

	if !result.Changed() {
		service.logger.Debug(fileUnchangedMessageConstant, zap.String(filePathFieldConstant, path))
		return outcome, nil
	}
	if dryRun {
		service.logger.Info(dryRunMessageConstant, zap.String(filePathFieldConstant, path), zap.Strings(appliedRulesFieldConstant, result.AppliedRules))
		return outcome, nil
	}

	fileInfo, statError := service.fileSystem.Stat(path)
	if statError != nil {
		return FileOutcome{}, FileError{Path: path, Operation: fileOperationStatConstant, Err: statError}
	}

	writeError := service.fileSystem.WriteFile(path, []byte(result.Content), fileInfo.Mode().Perm())
	if writeError != nil {
		return FileOutcome{}, FileError{Path: path, Operation: fileOperationWriteConstant, Err: writeError}
	}

	service.logger.Info(fileFixedMessageConstant, zap.String(filePathFieldConstant, path), zap.Strings(appliedRulesFieldConstant, result.AppliedRules))
	outcome.Written = true
	return outcome, nil
}

func resolveTargetRoot(baseDirectory string, targetDirectory string) string {
	if filepath.IsAbs(targetDirectory) {
		return targetDirectory
	}
	return filepath.Join(baseDirectory, targetDirectory)
}
