package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/adilet/stockeasy/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// CreateWithContext records a span around Create
func (r *GormProductRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.Float64("product.price", product.Price),
			attribute.Int("product.quantity", product.Quantity),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return nil
}

// ReplaceWithContext records a span around Replace
func (r *GormProductRepositoryWithTracing) ReplaceWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Replace",
		trace.WithAttributes(
			attribute.String("product.id", product.ID),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Replace(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// DeleteWithContext records a span around Delete
func (r *GormProductRepositoryWithTracing) DeleteWithContext(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("product.id", id),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// DecrementQuantityWithContext records a span around DecrementQuantity
func (r *GormProductRepositoryWithTracing) DecrementQuantityWithContext(ctx context.Context, id string, amount int) error {
	_, span := tracer.Start(ctx, "repository.DecrementQuantity",
		trace.WithAttributes(
			attribute.String("product.id", id),
			attribute.Int("sale.quantity", amount),
		),
	)
	defer span.End()

	err := r.GormProductRepository.DecrementQuantity(id, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
