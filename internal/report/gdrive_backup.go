package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fitdash/fitdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const rootBackupsFolderName = "fitdash-reports"

// GoogleDriveBackup keeps a copy of every exported report in a Drive
// folder. Optional, only wired up when credentials are configured.
type GoogleDriveBackup struct {
	service         *drive.Service
	backupsFolderId string
}

func NewGoogleDriveBackup(ctx context.Context, credentialsJson []byte) (*GoogleDriveBackup, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	rootFolderQuery := fmt.Sprintf(
		"mimeType = 'application/vnd.google-apps.folder' and trashed = false and name = '%s'",
		rootBackupsFolderName,
	)
	reportsFolder, err := driveService.
		Files.List().
		Q(rootFolderQuery).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve files: %w", err)
	}

	backupsFolderId := ""
	if len(reportsFolder.Files) > 0 {
		rbf := reportsFolder.Files[0]
		log.Debugf("reports backup folder found, %s: %s", rbf.Name, rbf.Id)
		backupsFolderId = rbf.Id
	}

	b := &GoogleDriveBackup{
		service: driveService,
	}

	if backupsFolderId == "" {
		log.Debugln("reports backup folder not found, recreating ...")
		backupsFolderId, err = b.createRootBackupsFolder()
		if err != nil {
			return nil, fmt.Errorf("failed to create reports backup folder: %w", err)
		}
		log.Debugf("new reports backup folder created: %s", backupsFolderId)
	}

	b.backupsFolderId = backupsFolderId

	return b, nil
}

func (b *GoogleDriveBackup) BackupReport(ctx context.Context, export *Export) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "reportBackup.backupReport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reportMeta := &drive.File{
		Name:     export.Filename,
		MimeType: "application/pdf",
		Parents:  []string{b.backupsFolderId},
	}

	backedUpFile, err := b.service.
		Files.Create(reportMeta).
		Fields("id, parents").
		Media(bytes.NewReader(export.PDF)).
		Do()
	if err != nil {
		return fmt.Errorf("create report backup file: %w", err)
	}

	log.Debugf("report %s backed up: %s", export.Filename, backedUpFile.Id)
	return nil
}

func (b *GoogleDriveBackup) createRootBackupsFolder() (string, error) {
	backupsFolderMeta := &drive.File{
		Name:     rootBackupsFolderName,
		MimeType: "application/vnd.google-apps.folder",
	}

	bfRes, err := b.service.
		Files.Create(backupsFolderMeta).
		Fields("id").
		Do()
	if err != nil {
		return "", err
	}

	return bfRes.Id, nil
}
