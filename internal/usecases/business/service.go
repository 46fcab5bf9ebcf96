// Package business associa as contas locais ao business (Business Manager) que as possui ou gerencia.
package business

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/paginating"
)

var relations = []string{metaclient.RelationOwned, metaclient.RelationClient}

type AssociationService interface {
	Associate(ctx context.Context, entityID, token string) (*domain.AssociationReport, error)
	AssociateByID(ctx context.Context, entityID string) (*domain.AssociationReport, error)
	AssociateAll(ctx context.Context) ([]*domain.AssociationReport, error)
}

type Service struct {
	fetcher      *paginating.Fetcher
	client       metaclient.Client
	accountRepo  repository.AccountRepository
	businessRepo repository.BusinessEntityRepository
	profileRepo  repository.CredentialProfileRepository
	metrics      *metrics.Metrics
}

func NewService(
	fetcher *paginating.Fetcher,
	client metaclient.Client,
	accountRepo repository.AccountRepository,
	businessRepo repository.BusinessEntityRepository,
	profileRepo repository.CredentialProfileRepository,
	m *metrics.Metrics,
) *Service {
	return &Service{
		fetcher:      fetcher,
		client:       client,
		accountRepo:  accountRepo,
		businessRepo: businessRepo,
		profileRepo:  profileRepo,
		metrics:      m,
	}
}

// Associate percorre as contas próprias e de clientes do business. Cada id normalizado é
// processado uma única vez, mesmo aparecendo nas duas relações.
func (s *Service) Associate(ctx context.Context, entityID, token string) (*domain.AssociationReport, error) {
	report := &domain.AssociationReport{
		BusinessEntityID: entityID,
		Unassociated:     []domain.UnassociatedAccount{},
	}
	log := logrus.WithField("business_id", entityID)

	seen := make(map[string]struct{})
	var walkErrs []error

	for _, relation := range relations {
		fetch := func(ctx context.Context, after string, limit int) ([]metadomain.AdAccount, string, error) {
			page, err := s.client.ListBusinessAccounts(ctx, entityID, relation, token, after, limit)
			if err != nil {
				return nil, "", err
			}
			return page.Data, page.Paging.NextCursor(), nil
		}

		handle := func(accounts []metadomain.AdAccount) error {
			for _, raw := range accounts {
				id := raw.NormalizedID()
				if id == "" {
					continue
				}
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}

				s.attach(ctx, report, entityID, id, raw.Name)
			}
			return nil
		}

		pages, reason, err := paginating.Walk(ctx, s.fetcher, relation, fetch, handle)
		if err != nil {
			walkErrs = append(walkErrs, fmt.Errorf("%w: %s: %w", ErrFetchRelation, relation, err))
			log.WithFields(logrus.Fields{
				"relation": relation,
				"pages":    pages,
				"error":    err.Error(),
			}).Warn("business: falha ao listar contas da relação, seguindo com a próxima")
			continue
		}

		log.WithFields(logrus.Fields{
			"relation":    relation,
			"pages":       pages,
			"stop_reason": string(reason),
		}).Debug("business: relação percorrida")
	}

	s.metrics.Unassociated(len(report.Unassociated))

	log.WithFields(logrus.Fields{
		"total_processed": report.TotalProcessed,
		"associated":      report.Associated,
		"unassociated":    len(report.Unassociated),
	}).Info("business: associação concluída")

	// nenhuma relação pôde ser lida
	if len(walkErrs) == len(relations) {
		return report, domain.NewSyncError(fmt.Errorf("%w: %w", ErrAssociationFailed, walkErrs[0]), "business_association", "", "")
	}

	return report, nil
}

func (s *Service) attach(ctx context.Context, report *domain.AssociationReport, entityID, accountID, name string) {
	report.TotalProcessed++

	found, err := s.accountRepo.SetBusinessEntity(ctx, accountID, entityID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"business_id": entityID,
			"account_id":  accountID,
			"error":       err.Error(),
		}).Error("business: falha ao associar conta")
		return
	}

	if !found {
		report.Unassociated = append(report.Unassociated, domain.UnassociatedAccount{ID: accountID, Name: name})
		return
	}

	report.Associated++
}

// AssociateByID resolve o token do perfil do business e executa a associação
func (s *Service) AssociateByID(ctx context.Context, entityID string) (*domain.AssociationReport, error) {
	entity, err := s.businessRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFindBusiness, err)
	}
	if entity == nil {
		return nil, fmt.Errorf("%w: %s", ErrBusinessNotFound, entityID)
	}

	token, err := s.tokenFor(ctx, entity)
	if err != nil {
		return nil, err
	}

	return s.Associate(ctx, entity.ID, token)
}

// AssociateAll executa a associação para todos os business cadastrados; falhas são isoladas por business
func (s *Service) AssociateAll(ctx context.Context) ([]*domain.AssociationReport, error) {
	entities, err := s.businessRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListBusinesses, err)
	}

	reports := make([]*domain.AssociationReport, 0, len(entities))
	for _, entity := range entities {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		log := logrus.WithFields(logrus.Fields{
			"business_id": entity.ID,
			"profile_id":  entity.CredentialProfileID,
		})

		token, err := s.tokenFor(ctx, entity)
		if err != nil {
			log.WithError(err).Warn("business: business sem credencial utilizável, ignorado")
			continue
		}

		report, err := s.Associate(ctx, entity.ID, token)
		if err != nil {
			log.WithError(err).Error("business: falha na associação do business")
			continue
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func (s *Service) tokenFor(ctx context.Context, entity *domain.BusinessEntity) (string, error) {
	profile, err := s.profileRepo.GetByID(ctx, entity.CredentialProfileID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFindProfile, err)
	}

	return profile.ActiveToken()
}
