package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	pg "shelter-dogs/internal/adapters/storage/postgres"
	"shelter-dogs/internal/app"
	"shelter-dogs/internal/domain/dogs"
	"shelter-dogs/internal/domain/photos"
	"shelter-dogs/internal/i18n"
	"shelter-dogs/internal/legacy"
)

var (
	entriesPath      string
	descriptionsPath string
	photosDir        string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the descriptions of every dog from the legacy site",
	Long: `Read the dog list (all-dogs.json), fetch every dog page in small
batches and write the extracted descriptions (dogs-descriptions.json).

Pages that fail or that fall outside the time budget are written with an
empty description.`,
	RunE: runScrape,
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download photos and descriptions into local folders",
	Long: `Download every dog page and its photos into
{dir}/{size folder}/{slug}/ together with info.txt, and write manifest.json.`,
	RunE: runDownload,
}

var importDescriptionsCmd = &cobra.Command{
	Use:   "import-descriptions",
	Short: "Overwrite dog descriptions from the scraped file",
	RunE:  runImportDescriptions,
}

var backfillSexCmd = &cobra.Command{
	Use:   "backfill-sex",
	Short: "Fill the sex column from the scraped descriptions",
	RunE:  runBackfillSex,
}

var uploadPhotosCmd = &cobra.Command{
	Use:   "upload-photos",
	Short: "Upload the downloaded photos and create missing dogs",
	RunE:  runUploadPhotos,
}

var deleteLogosCmd = &cobra.Command{
	Use:   "delete-logos",
	Short: "Delete the legacy logo uploaded as photo-02.jpg",
	RunE:  runDeleteLogos,
}

func init() {
	for _, c := range []*cobra.Command{scrapeCmd, downloadCmd, uploadPhotosCmd} {
		c.Flags().StringVar(&entriesPath, "in", "all-dogs.json", "Dog list exported from the legacy site")
	}
	scrapeCmd.Flags().StringVar(&descriptionsPath, "out", "dogs-descriptions.json", "Output file")
	for _, c := range []*cobra.Command{importDescriptionsCmd, backfillSexCmd} {
		c.Flags().StringVar(&descriptionsPath, "in", "dogs-descriptions.json", "Scraped descriptions")
	}
	for _, c := range []*cobra.Command{downloadCmd, uploadPhotosCmd} {
		c.Flags().StringVar(&photosDir, "dir", "dogs", "Local photos folder")
	}
}

func runScrape(cmd *cobra.Command, _ []string) error {
	entries, err := legacy.ReadJSON[legacy.Entry](entriesPath)
	if err != nil {
		return err
	}
	recs, rep := legacy.NewScraper(log).Scrape(cmd.Context(), entries)
	if err := legacy.WriteJSON(descriptionsPath, recs); err != nil {
		return err
	}
	log.Info("scrape done", map[string]any{"processed": rep.Processed, "with_text": rep.WithText, "empty": rep.Empty})
	fmt.Fprintf(cmd.OutOrStdout(), "%d processed, %d with text, %d empty -> %s\n",
		rep.Processed, rep.WithText, rep.Empty, descriptionsPath)
	return nil
}

func runDownload(cmd *cobra.Command, _ []string) error {
	entries, err := legacy.ReadJSON[legacy.Entry](entriesPath)
	if err != nil {
		return err
	}
	m, err := legacy.NewDownloader(photosDir, log).Download(cmd.Context(), entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d dogs, %d photos, %d failures\n", m.TotalDogs, m.TotalPhotos, len(m.Failures))
	return nil
}

func runImportDescriptions(cmd *cobra.Command, _ []string) error {
	recs, err := legacy.ReadJSON[legacy.DescriptionRecord](descriptionsPath)
	if err != nil {
		return err
	}
	return withImporter(cmd.Context(), func(im *legacy.Importer) error {
		printReport(cmd.OutOrStdout(), im.ImportDescriptions(cmd.Context(), recs))
		return nil
	})
}

func runBackfillSex(cmd *cobra.Command, _ []string) error {
	recs, err := legacy.ReadJSON[legacy.DescriptionRecord](descriptionsPath)
	if err != nil {
		return err
	}
	return withImporter(cmd.Context(), func(im *legacy.Importer) error {
		printReport(cmd.OutOrStdout(), im.BackfillSex(cmd.Context(), recs))
		return nil
	})
}

func runUploadPhotos(cmd *cobra.Command, _ []string) error {
	entries, err := legacy.ReadJSON[legacy.Entry](entriesPath)
	if err != nil {
		return err
	}
	return withImporter(cmd.Context(), func(im *legacy.Importer) error {
		rep, err := im.UploadPhotos(cmd.Context(), photosDir, entries)
		printReport(cmd.OutOrStdout(), rep)
		return err
	})
}

func runDeleteLogos(cmd *cobra.Command, _ []string) error {
	return withImporter(cmd.Context(), func(im *legacy.Importer) error {
		keys, err := im.DeleteLogos(cmd.Context())
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), "deleted", k)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d logo(s) deleted\n", len(keys))
		return nil
	})
}

// withImporter arma los services contra la base y el bucket configurados.
func withImporter(ctx context.Context, fn func(*legacy.Importer) error) error {
	if cfg.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}
	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := app.NewBlobStore(ctx, cfg.Blob)
	if err != nil {
		return err
	}
	catalogs, err := i18n.Load()
	if err != nil {
		return err
	}

	photosSvc := photos.NewService(store, log, nil)
	dogsSvc := dogs.NewService(pg.NewDogsRepo(db), photosSvc, catalogs, log, nil)
	return fn(legacy.NewImporter(dogsSvc, photosSvc, log))
}

func printReport(w io.Writer, r legacy.Report) {
	fmt.Fprintf(w, "updated=%d created=%d skipped=%d failed=%d photos=%d\n",
		r.Updated, r.Created, r.Skipped, r.Failed, r.Photos)
}
