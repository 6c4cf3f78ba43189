// Package modelcat loads model metadata spreadsheets into a remote catalog
// and exports the catalog back to spreadsheet form.
package modelcat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"modelcat/pkg/modelcat/directory"
	"modelcat/pkg/modelcat/models"
	"modelcat/pkg/modelcat/sciencebase"
	"modelcat/pkg/modelcat/sheet"
	"modelcat/pkg/modelcat/transform"
)

const defaultPageSize = 20

// Pipeline wires the catalog and directory clients into the load and
// export flows. Everything runs single-threaded and sequential: rows are
// transformed one at a time, one directory call per contact token, and all
// catalog writes go out as one batch request.
type Pipeline struct {
	catalog   *sciencebase.Client
	directory *directory.Client
	log       *zap.Logger
}

// NewPipeline creates a pipeline over the given clients. A nil logger
// disables logging.
func NewPipeline(catalog *sciencebase.Client, dir *directory.Client, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{catalog: catalog, directory: dir, log: log}
}

// Load reads source rows from inputPath, transforms each into a catalog
// item, and submits all items as one batch. It returns the stored items in
// submission order. The first failing row aborts the run; nothing is
// retried and no partial-failure tracking is attempted.
func (p *Pipeline) Load(ctx context.Context, inputPath string, opts LoadOptions) ([]models.Item, error) {
	rows, err := sheet.ReadRows(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", inputPath, err)
	}

	parentID, err := p.resolveParent(ctx, opts)
	if err != nil {
		return nil, err
	}

	transformer := transform.NewTransformer(transform.NewResolver(p.directory, p.log))

	items := make([]models.Item, 0, len(rows))
	for i, row := range rows {
		item, err := transformer.Transform(ctx, row, parentID)
		if err != nil {
			return nil, &RowError{Row: i + 2, Title: row.ModelName, Err: err}
		}
		p.log.Debug("transformed row",
			zap.String("title", item.Title),
			zap.Int("contacts", len(item.Contacts)),
			zap.Int("webLinks", len(item.WebLinks)))
		items = append(items, item)
	}

	created, err := p.catalog.CreateItems(ctx, items)
	if err != nil {
		return nil, err
	}

	p.log.Info("loaded catalog items",
		zap.String("parent", parentID),
		zap.Int("count", len(created)))
	return created, nil
}

// resolveParent picks the container the new items are created under,
// replacing a same-titled container when requested.
func (p *Pipeline) resolveParent(ctx context.Context, opts LoadOptions) (string, error) {
	parentID := opts.ParentID
	if parentID == "" {
		id, err := p.catalog.MyItemsID(ctx)
		if err != nil {
			return "", err
		}
		parentID = id
	}
	if opts.ContainerTitle == "" {
		return parentID, nil
	}
	return p.ReplaceContainer(ctx, parentID, opts.ContainerTitle, opts.PageSize)
}

// ReplaceContainer creates a fresh container titled title under parentID
// and returns its ID. Any pre-existing child with the same title is
// deleted first together with its children. The deletion is destructive
// and unconditional.
func (p *Pipeline) ReplaceContainer(ctx context.Context, parentID, title string, pageSize int) (string, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	paginator := p.catalog.FindItemsByParent(parentID, []string{"title"}, pageSize)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", err
		}
		for _, item := range page.Items {
			if item.Title != title {
				continue
			}
			if err := p.deleteWithChildren(ctx, item.ID, pageSize); err != nil {
				return "", err
			}
			p.log.Warn("deleted existing container",
				zap.String("title", title),
				zap.String("id", item.ID))
		}
	}

	created, err := p.catalog.CreateItem(ctx, models.Item{ParentID: parentID, Title: title})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (p *Pipeline) deleteWithChildren(ctx context.Context, id string, pageSize int) error {
	paginator := p.catalog.FindItemsByParent(id, []string{"title"}, pageSize)
	var childIDs []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, child := range page.Items {
			childIDs = append(childIDs, child.ID)
		}
	}
	if err := p.catalog.DeleteItems(ctx, childIDs); err != nil {
		return err
	}
	return p.catalog.DeleteItem(ctx, id)
}
