package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dicky/portfolio/internal/domain/portfolio"
	"github.com/dicky/portfolio/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FallbackContext is handed to the assistant when the content store cannot
// be read.
const FallbackContext = "Maaf, saat ini saya tidak dapat mengakses database portofolio lengkap. Namun saya siap menjawab pertanyaan umum."

const notAvailable = "Tidak tersedia"

// ContextAggregator renders the whole portfolio into the plain-text blob the
// assistant uses as its source of truth.
type ContextAggregator struct {
	repos   Repositories
	timeout time.Duration
	logger  *zap.Logger
}

// NewContextAggregator creates a ContextAggregator. A zero timeout leaves the
// caller's deadline in charge.
func NewContextAggregator(repos Repositories, timeout time.Duration, logger *zap.Logger) *ContextAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContextAggregator{repos: repos, timeout: timeout, logger: logger}
}

type snapshot struct {
	projects []portfolio.Project
	journey  []portfolio.JourneyItem
	services []portfolio.ServicePackage
	posts    []portfolio.BlogPost
	socials  []portfolio.SocialLink
}

// Build fetches every collection concurrently and formats them. Any failed
// fetch fails the whole build.
func (a *ContextAggregator) Build(ctx context.Context) (string, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "portfolio_context", "build")
	defer span.End()

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.projects, err = a.repos.Projects.FindAll(gctx)
		return wrapFetch("projects", err)
	})
	g.Go(func() (err error) {
		snap.journey, err = a.repos.Journey.FindAll(gctx)
		return wrapFetch("journey", err)
	})
	g.Go(func() (err error) {
		snap.services, err = a.repos.Services.FindAll(gctx)
		return wrapFetch("services", err)
	})
	g.Go(func() (err error) {
		snap.posts, err = a.repos.Posts.FindPublished(gctx)
		return wrapFetch("posts", err)
	})
	g.Go(func() (err error) {
		snap.socials, err = a.repos.Socials.FindActive(gctx)
		return wrapFetch("socials", err)
	})
	if err := g.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return "", err
	}
	text := formatContext(snap)
	telemetry.SetAttributes(span, telemetry.SpanAttrContextSize, len(text))
	return text, nil
}

// PortfolioContext returns the formatted context, or FallbackContext when
// any collection cannot be read.
func (a *ContextAggregator) PortfolioContext(ctx context.Context) string {
	text, err := a.Build(ctx)
	if err != nil {
		a.logger.Error("Failed to build portfolio context", zap.Error(err))
		return FallbackContext
	}
	return text
}

func wrapFetch(what string, err error) error {
	if err != nil {
		return fmt.Errorf("fetch %s: %w", what, err)
	}
	return nil
}

func formatContext(s snapshot) string {
	var b strings.Builder

	b.WriteString("\nINFORMASI PORTOFOLIO (DATA DIRI & PENGALAMAN):\n\n")

	b.WriteString("1. PROYEK (PROJECTS):\nBerikut adalah daftar proyek yang telah dikerjakan:\n")
	section(&b, s.projects, func(p *portfolio.Project) string {
		return fmt.Sprintf("- Nama: %s\n  Deskripsi: %s\n  Teknologi: %s\n  Link Demo: %s\n  Link Repo: %s\n",
			p.Title, p.Description,
			joinOr(p.TechNames(), "N/A"),
			or(p.DemoLink, notAvailable),
			or(p.RepoLink, notAvailable))
	})

	b.WriteString("\n2. PERJALANAN KARIR & PENDIDIKAN (JOURNEY):\nRiwayat pengalaman kerja dan pendidikan:\n")
	section(&b, s.journey, func(j *portfolio.JourneyItem) string {
		return fmt.Sprintf("- Posisi/Gelar: %s\n  Institusi: %s\n  Tahun: %s\n  Deskripsi: %s\n",
			j.Role, j.Company, j.Year, j.Description)
	})

	b.WriteString("\n3. LAYANAN (SERVICES):\nJasa yang ditawarkan:\n")
	section(&b, s.services, func(sp *portfolio.ServicePackage) string {
		line := fmt.Sprintf("- Layanan: %s\n  Deskripsi: %s\n", sp.Title, sp.Description)
		if sp.Price != "" {
			line += fmt.Sprintf("  Harga: %s\n", sp.Price)
		}
		return line
	})

	b.WriteString("\n4. ARTIKEL BLOG (BLOG POSTS):\nArtikel yang ditulis dan dipublikasikan:\n")
	section(&b, s.posts, func(p *portfolio.BlogPost) string {
		return fmt.Sprintf("- Judul: %s\n  Ringkasan: %s\n  Topik/Tags: %s\n  Slug/Link: /blog/%s\n",
			p.Title, p.Excerpt, joinOr(p.Tags, "Umum"), p.Slug)
	})

	b.WriteString("\n5. KONTAK & SOSIAL MEDIA (SOCIALS):\nCara menghubungi:\n")
	section(&b, s.socials, func(l *portfolio.SocialLink) string {
		return fmt.Sprintf("- Platform: %s\n  Username/Label: %s\n  Link: %s\n", l.Platform, l.Label, l.URL)
	})

	b.WriteString(`
INSTRUKSI TAMBAHAN UNTUK AI:
- Gunakan data di atas sebagai referensi utama alias "Kebenaran Mutlak".
- Jika user bertanya tentang skill yang tidak ada di daftar proyek atau journey, jawab jujur bahwa data tersebut tidak tercatat, namun kamu bisa belajar dengan cepat.
- Jangan mengarang proyek atau pengalaman yang tidak ada di data di atas.
- Jika user bertanya tentang artikel blog, berikan ringkasan singkat dan arahkan mereka ke link artikel yang relevan (/blog/slug).
`)
	return b.String()
}

// section writes one entry per item, separated by blank lines
func section[T any](b *strings.Builder, items []T, entry func(*T) string) {
	for i := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(entry(&items[i]))
	}
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
