package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/CPU-commits/Intranet_BLearning/funct"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"github.com/CPU-commits/Intranet_BLearning/utils"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MAX_ATTACHMENTS = 10
const MAX_ATTACHMENT_SIZE = 1024 * 1024 * 50

// Parallel downloads from storage
const DOWNLOAD_WORKERS = 5

func (l *LessonService) UploadAttachment(
	ctx context.Context,
	idLesson string,
	file *multipart.FileHeader,
	claims *Claims,
) (*models.Attachment, *res.ErrorRes) {
	lesson, errRes := l.managedLesson(ctx, idLesson, claims)
	if errRes != nil {
		return nil, errRes
	}
	if len(lesson.Attachments) >= MAX_ATTACHMENTS {
		return nil, res.BadRequest(fmt.Errorf("a lesson can have up to %d attachments", MAX_ATTACHMENTS))
	}
	if file.Size > MAX_ATTACHMENT_SIZE {
		return nil, res.BadRequest(fmt.Errorf("attachment is too large"))
	}

	filename := filepath.Base(file.Filename)
	key := fmt.Sprintf("lessons/%s/%s-%s", lesson.ID.Hex(), uuid.New().String(), filename)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	location, errRes := l.upload(ctx, key, file, contentType)
	if errRes != nil {
		return nil, errRes
	}

	attachment := models.Attachment{
		ID:       primitive.NewObjectID(),
		Filename: filename,
		Key:      key,
		Location: location,
		Mimetype: contentType,
		Size:     file.Size,
	}
	lesson.Attachments = append(lesson.Attachments, attachment)
	lesson.UpdatedAt = nowFunc()
	if err := l.Lessons.Save(ctx, lesson); err != nil {
		return nil, l.unavailable(err)
	}
	return &attachment, nil
}

func (l *LessonService) DeleteAttachment(
	ctx context.Context,
	idLesson,
	idAttachment string,
	claims *Claims,
) *res.ErrorRes {
	lesson, errRes := l.managedLesson(ctx, idLesson, claims)
	if errRes != nil {
		return errRes
	}
	idObjAttachment, errRes := parseID(idAttachment, "attachment")
	if errRes != nil {
		return errRes
	}
	index := funct.Index(lesson.Attachments, func(a models.Attachment) bool {
		return a.ID == idObjAttachment
	})
	if index == -1 {
		return res.NotFound(fmt.Errorf("attachment not found"))
	}
	attachment := lesson.Attachments[index]
	if err := l.Storage.DeleteFile(ctx, attachment.Key); err != nil {
		return res.NewErrorRes(err, storageStatus(err))
	}

	lesson.Attachments = append(lesson.Attachments[:index], lesson.Attachments[index+1:]...)
	lesson.UpdatedAt = nowFunc()
	if err := l.Lessons.Save(ctx, lesson); err != nil {
		return l.unavailable(err)
	}
	return nil
}

// DownloadAttachments bundles every attachment of the lesson in a zip
func (l *LessonService) DownloadAttachments(
	ctx context.Context,
	idLesson string,
	claims *Claims,
) (*bytes.Buffer, string, *res.ErrorRes) {
	lesson, errRes := l.findLesson(ctx, idLesson)
	if errRes != nil {
		return nil, "", errRes
	}
	if errRes := l.checkAccess(ctx, lesson, claims); errRes != nil {
		return nil, "", errRes
	}
	if len(lesson.Attachments) == 0 {
		return nil, "", res.NotFound(fmt.Errorf("the lesson has no attachments"))
	}

	files := make([][]byte, len(lesson.Attachments))
	errRes = utils.Concurrency(ctx, DOWNLOAD_WORKERS, len(lesson.Attachments), func(
		ctx context.Context,
		index int,
		setError func(errRes *res.ErrorRes),
	) {
		body, err := l.Storage.GetFile(ctx, lesson.Attachments[index].Key)
		if err != nil {
			setError(res.NewErrorRes(err, storageStatus(err)))
			return
		}
		defer body.Close()

		data, err := io.ReadAll(body)
		if err != nil {
			setError(res.NewErrorRes(err, storageStatus(err)))
			return
		}
		files[index] = data
	})
	if errRes != nil {
		return nil, "", errRes
	}

	buf := new(bytes.Buffer)
	zipWriter := zip.NewWriter(buf)
	names := make(map[string]int)
	for i, attachment := range lesson.Attachments {
		name := attachment.Filename
		if n := names[name]; n > 0 {
			ext := filepath.Ext(name)
			name = fmt.Sprintf("%s (%d)%s", name[:len(name)-len(ext)], n, ext)
		}
		names[attachment.Filename]++

		writer, err := zipWriter.Create(name)
		if err != nil {
			return nil, "", l.internal(err)
		}
		if _, err := writer.Write(files[i]); err != nil {
			return nil, "", l.internal(err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return nil, "", l.internal(err)
	}
	return buf, fmt.Sprintf("lesson-%s.zip", lesson.ID.Hex()), nil
}
