package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	coverMaxWidth  = 1280
	coverMaxHeight = 720
	coverQuality   = 80
	maxUploadSize  = 5 * 1024 * 1024
)

// ConvertCoverToWebP decodifica la imagen subida, la reescala a 1280x720
// máximo (manteniendo aspecto) y la re-codifica en webp.
func ConvertCoverToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, fmt.Errorf("la imagen supera el límite de %dMB", maxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la imagen: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("formato de imagen no soportado: %w", err)
	}

	if img.Bounds().Dx() > coverMaxWidth || img.Bounds().Dy() > coverMaxHeight {
		img = imaging.Fit(img, coverMaxWidth, coverMaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: coverQuality}); err != nil {
		return nil, fmt.Errorf("no se pudo codificar a webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveCoverImage guarda el webp en el directorio de uploads y devuelve
// la key pública (ruta relativa servida como estático).
func SaveCoverImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	data, err := ConvertCoverToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(uploadsRoot(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("no se pudo crear el directorio de uploads: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename) + ".webp"
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("no se pudo guardar la imagen: %w", err)
	}

	return filepath.ToSlash(filepath.Join("uploads", folder, filename)), nil
}

func uploadsRoot() string {
	if v := strings.TrimSpace(os.Getenv("UPLOADS_DIR")); v != "" {
		return v
	}
	return "uploads"
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// ✅ Nombre único: fecha + uuid + nombre saneado (sin extensión)
func GenerateUniqueFilename(originalFilename string) string {
	base := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String(), safe)
}
