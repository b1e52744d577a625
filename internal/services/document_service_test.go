package services_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/docdesk/internal/domain/entities"
	domainerrors "github.com/rafabene/docdesk/internal/domain/errors"
	"github.com/rafabene/docdesk/internal/domain/ports"
	"github.com/rafabene/docdesk/internal/domain/repositories"
	"github.com/rafabene/docdesk/internal/infrastructure/persistence/dbtest"
	"github.com/rafabene/docdesk/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/docdesk/internal/services"
)

// fakeRecorder guarda as operações registradas
type fakeRecorder struct {
	mu   sync.Mutex
	seen []string
}

func (f *fakeRecorder) RecordOperation(operation, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, operation+":"+outcome)
}

// brokenRepo simula um banco indisponível
type brokenRepo struct{ err error }

func (b brokenRepo) Create(context.Context, *entities.Document) error { return b.err }
func (b brokenRepo) FindByID(context.Context, int64) (*entities.Document, error) {
	return nil, b.err
}
func (b brokenRepo) Update(context.Context, *entities.Document) (bool, error) { return false, b.err }
func (b brokenRepo) SoftDelete(context.Context, int64) (bool, error) { return false, b.err }
func (b brokenRepo) List(context.Context, repositories.DocumentFilters) ([]*entities.Document, error) {
	return nil, b.err
}
func (b brokenRepo) NameExists(context.Context, string, *int64) (bool, error) { return false, b.err }

// passthroughUoW executa fn sem transação real
type passthroughUoW struct{ rollbacks int }

func (p *passthroughUoW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (p *passthroughUoW) Commit(context.Context) error { return nil }
func (p *passthroughUoW) Rollback(context.Context) error {
	p.rollbacks++
	return nil
}
func (p *passthroughUoW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		p.rollbacks++
		return err
	}
	return nil
}

var _ = Describe("DocumentService", func() {
	var (
		ctx      context.Context
		service  *services.DocumentService
		recorder *fakeRecorder
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := dbtest.Open(GinkgoT())
		recorder = &fakeRecorder{}
		service = services.NewDocumentService(
			postgres.NewDocumentRepository(db),
			postgres.NewUnitOfWork(db),
			ports.NopLogger{},
			recorder,
		)
	})

	create := func(name, resume, jd, summary string) services.Result {
		return service.CreateDocument(ctx, services.DocumentInput{Name: name, Resume: resume, JD: jd, Summary: summary})
	}

	Describe("CreateDocument", func() {
		It("persists trimmed values and returns the new id", func() {
			result := create("  Alice Resume ", " resume\n", "\tjd", " summary ")

			Expect(result.OK()).To(BeTrue())
			Expect(result.ID).To(BeNumerically(">", 0))
			Expect(result.Message).To(Equal(services.MsgDocumentCreated))
			Expect(result.Params).To(HaveKeyWithValue("Name", "Alice Resume"))

			doc, err := service.GetDocument(ctx, result.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Name.String()).To(Equal("Alice Resume"))
			Expect(doc.Resume).To(Equal("resume"))
			Expect(doc.JD).To(Equal("jd"))
			Expect(doc.Summary).To(Equal("summary"))
		})

		It("rejects an empty name before touching storage", func() {
			result := create("", "r", "j", "s")

			Expect(result.OK()).To(BeFalse())
			Expect(result.Outcome).To(Equal(services.OutcomeValidation))
			Expect(result.Message).To(Equal(domainerrors.ErrDocumentNameRequired.Error()))
			Expect(result.ID).To(BeZero())

			docs, err := service.ListDocuments(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(BeEmpty())
		})

		It("reports a duplicate name and leaves the first document untouched", func() {
			first := create("Report", "original", "", "")
			Expect(first.OK()).To(BeTrue())

			second := create(" Report ", "copy", "", "")
			Expect(second.Outcome).To(Equal(services.OutcomeDuplicateName))
			Expect(second.Params).To(HaveKeyWithValue("Name", "Report"))

			doc, err := service.GetDocument(ctx, first.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Resume).To(Equal("original"))

			docs, err := service.ListDocuments(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
		})

		It("treats names case-sensitively for uniqueness", func() {
			Expect(create("Report", "", "", "").OK()).To(BeTrue())
			Expect(create("report", "", "", "").OK()).To(BeTrue())
		})

		It("stores long texts untruncated", func() {
			long := strings.Repeat("R", 9000)
			result := create("Alice Resume", long, strings.Repeat("J", 9000), "short")
			Expect(result.OK()).To(BeTrue())

			doc, err := service.GetDocument(ctx, result.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Resume).To(HaveLen(9000))
			Expect(doc.Summary).To(Equal("short"))
		})
	})

	Describe("UpdateDocument", func() {
		It("replaces all text fields", func() {
			created := create("Draft", "r", "j", "s")

			result := service.UpdateDocument(ctx, created.ID, services.DocumentInput{Name: " Final ", Resume: "r2", JD: "", Summary: "s2"})
			Expect(result.OK()).To(BeTrue())
			Expect(result.Message).To(Equal(services.MsgDocumentUpdated))
			Expect(result.Params).To(HaveKeyWithValue("Name", "Final"))

			doc, err := service.GetDocument(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Name.String()).To(Equal("Final"))
			Expect(doc.Resume).To(Equal("r2"))
			Expect(doc.JD).To(BeEmpty())
			Expect(doc.Summary).To(Equal("s2"))
		})

		It("reports not found for a missing id without creating a row", func() {
			result := service.UpdateDocument(ctx, 999, services.DocumentInput{Name: "X", Resume: "r", JD: "j", Summary: "s"})

			Expect(result.OK()).To(BeFalse())
			Expect(result.Outcome).To(Equal(services.OutcomeNotFound))
			Expect(result.Message).To(Equal(domainerrors.ErrDocumentNotFound.Error()))

			docs, err := service.ListDocuments(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(BeEmpty())
		})

		It("reports not found for a soft-deleted id and changes nothing", func() {
			created := create("Gone", "before", "", "")
			Expect(service.DeleteDocument(ctx, created.ID).OK()).To(BeTrue())

			result := service.UpdateDocument(ctx, created.ID, services.DocumentInput{Name: "Gone", Resume: "after"})
			Expect(result.Outcome).To(Equal(services.OutcomeNotFound))

			_, err := service.GetDocument(ctx, created.ID)
			Expect(err).To(MatchError(domainerrors.ErrDocumentNotFound))
		})

		It("validates id and name", func() {
			Expect(service.UpdateDocument(ctx, 0, services.DocumentInput{Name: "x"}).Outcome).To(Equal(services.OutcomeValidation))
			Expect(service.UpdateDocument(ctx, -3, services.DocumentInput{Name: "x"}).Message).To(Equal(domainerrors.ErrInvalidDocumentID.Error()))

			created := create("Named", "", "", "")
			result := service.UpdateDocument(ctx, created.ID, services.DocumentInput{Name: "   "})
			Expect(result.Outcome).To(Equal(services.OutcomeValidation))
			Expect(result.Message).To(Equal(domainerrors.ErrDocumentNameRequired.Error()))
		})

		It("reports a duplicate when renaming onto another active document", func() {
			create("A", "", "", "")
			b := create("B", "body", "", "")

			result := service.UpdateDocument(ctx, b.ID, services.DocumentInput{Name: "A", Resume: "changed"})
			Expect(result.Outcome).To(Equal(services.OutcomeDuplicateName))

			doc, err := service.GetDocument(ctx, b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Name.String()).To(Equal("B"))
			Expect(doc.Resume).To(Equal("body"))
		})

		It("allows keeping the same name", func() {
			created := create("Same", "v1", "", "")
			Expect(service.UpdateDocument(ctx, created.ID, services.DocumentInput{Name: "Same", Resume: "v2"}).OK()).To(BeTrue())
		})
	})

	Describe("DeleteDocument", func() {
		It("succeeds once and then reports not found", func() {
			created := create("Temp", "", "", "")

			first := service.DeleteDocument(ctx, created.ID)
			Expect(first.OK()).To(BeTrue())
			Expect(first.Message).To(Equal(services.MsgDocumentDeleted))
			Expect(first.Params).To(HaveKeyWithValue("ID", created.ID))

			second := service.DeleteDocument(ctx, created.ID)
			Expect(second.Outcome).To(Equal(services.OutcomeNotFound))
		})

		It("rejects non-positive ids", func() {
			Expect(service.DeleteDocument(ctx, 0).Outcome).To(Equal(services.OutcomeValidation))
		})

		It("lets a new document reuse a deleted name", func() {
			created := create("Reuse", "", "", "")
			Expect(service.DeleteDocument(ctx, created.ID).OK()).To(BeTrue())
			Expect(create("Reuse", "", "", "").OK()).To(BeTrue())
		})
	})

	Describe("ListDocuments", func() {
		BeforeEach(func() {
			create("Backend Engineer", "", "", "")
			create("Frontend Dev", "", "", "")
			deleted := create("Backend Intern", "", "", "")
			service.DeleteDocument(ctx, deleted.ID)
		})

		DescribeTable("matches name substrings case-insensitively",
			func(term string) {
				docs, err := service.ListDocuments(ctx, term)
				Expect(err).NotTo(HaveOccurred())
				Expect(docs).To(HaveLen(1))
				Expect(docs[0].Name.String()).To(Equal("Backend Engineer"))
			},
			Entry("lowercase", "backend"),
			Entry("uppercase", "ENGINEER"),
			Entry("inner substring", "end eng"),
		)

		It("never returns soft-deleted documents", func() {
			for _, term := range []string{"", "backend", "intern"} {
				docs, err := service.ListDocuments(ctx, term)
				Expect(err).NotTo(HaveOccurred())
				for _, d := range docs {
					Expect(d.IsActive()).To(BeTrue())
					Expect(d.Name.String()).NotTo(Equal("Backend Intern"))
				}
			}
		})

		It("returns everything for an empty term", func() {
			docs, err := service.ListDocuments(ctx, "  ")
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(2))
		})
	})

	Describe("GetDocument", func() {
		It("rejects invalid ids", func() {
			_, err := service.GetDocument(ctx, 0)
			Expect(err).To(MatchError(domainerrors.ErrInvalidDocumentID))
		})

		It("returns not found for unknown ids", func() {
			_, err := service.GetDocument(ctx, 42)
			Expect(err).To(MatchError(domainerrors.ErrDocumentNotFound))
		})
	})

	Describe("NameExists", func() {
		It("excludes the given id", func() {
			created := create("Taken", "", "", "")

			exists, err := service.NameExists(ctx, "Taken", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = service.NameExists(ctx, "Taken", &created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	It("records every operation outcome", func() {
		create("", "", "", "")
		create("Ok", "", "", "")

		Expect(recorder.seen).To(ContainElements("create:validation_error", "create:success"))
	})
})

var _ = Describe("DocumentService with a failing store", func() {
	var (
		ctx     context.Context
		uow     *passthroughUoW
		service *services.DocumentService
		cause   = errors.New("connection refused")
	)

	BeforeEach(func() {
		ctx = context.Background()
		uow = &passthroughUoW{}
		service = services.NewDocumentService(brokenRepo{err: cause}, uow, ports.NopLogger{}, nil)
	})

	It("propagates list failures as storage errors", func() {
		_, err := service.ListDocuments(ctx, "")
		Expect(errors.Is(err, domainerrors.ErrStorage)).To(BeTrue())
		Expect(errors.Is(err, cause)).To(BeTrue())
	})

	It("wraps get failures", func() {
		_, err := service.GetDocument(ctx, 1)
		Expect(errors.Is(err, domainerrors.ErrStorage)).To(BeTrue())
	})

	It("hides the cause behind a generic message and rolls back", func() {
		result := service.CreateDocument(ctx, services.DocumentInput{Name: "x"})

		Expect(result.Outcome).To(Equal(services.OutcomeStorage))
		Expect(result.Message).To(Equal(domainerrors.ErrStorage.Error()))
		Expect(errors.Is(result.Err, cause)).To(BeTrue())
		Expect(uow.rollbacks).To(Equal(1))
	})

	It("maps update and delete failures to storage errors", func() {
		Expect(service.UpdateDocument(ctx, 1, services.DocumentInput{Name: "x"}).Outcome).To(Equal(services.OutcomeStorage))
		Expect(service.DeleteDocument(ctx, 1).Outcome).To(Equal(services.OutcomeStorage))
		Expect(uow.rollbacks).To(Equal(2))
	})

	It("does not reach storage on validation failures", func() {
		Expect(service.CreateDocument(ctx, services.DocumentInput{Name: " "}).Outcome).To(Equal(services.OutcomeValidation))
		Expect(uow.rollbacks).To(BeZero())
	})
})
