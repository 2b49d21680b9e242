package storage

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"techclub_backend/internals/configs"
)

// Penyimpanan gambar: Aliyun OSS bila dikonfigurasi, fallback direktori lokal.
// Hasil OSS berupa URL https penuh; hasil lokal berupa path "/storage/..."
// yang di-serve backend sendiri. Keduanya lolos aturan resolusi media URL.

var (
	ossBucket   *oss.Bucket
	ossEndpoint string
	ossName     string
	localDir    string
)

func Init() {
	localDir = configs.GetEnv("STORAGE_DIR", "./storage")

	endpoint := configs.GetEnv("OSS_ENDPOINT")
	keyID := configs.GetEnv("OSS_ACCESS_KEY_ID")
	keySecret := configs.GetEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := configs.GetEnv("OSS_BUCKET")

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		log.Printf("[INFO] OSS tidak dikonfigurasi, gambar disimpan lokal di %s", localDir)
		return
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		log.Printf("[ERROR] Gagal inisialisasi OSS client: %v (fallback lokal)", err)
		return
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		log.Printf("[ERROR] Gagal membuka bucket OSS %s: %v (fallback lokal)", bucketName, err)
		return
	}

	ossBucket = bucket
	ossEndpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	ossName = bucketName
	log.Printf("[INFO] Storage OSS aktif: bucket=%s", bucketName)
}

func LocalDir() string {
	if localDir == "" {
		return "./storage"
	}
	return localDir
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

func uniqueObjectName(folder, filename, ext string) string {
	base := strings.TrimSuffix(sanitizeFilename(filepath.Base(filename)), filepath.Ext(filename))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s/%s-%s-%s%s", folder, time.Now().Format("20060102"), uuid.New().String(), base, ext)
}

// SaveImage menyimpan satu gambar upload dan mengembalikan path/URL tersimpan.
// JPG/PNG/WEBP di-re-encode ke webp agar ukurannya kecil; GIF disimpan apa
// adanya supaya animasi tidak hilang.
func SaveImage(folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	raw := new(bytes.Buffer)
	if _, err := io.Copy(raw, src); err != nil {
		return "", fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	data := raw.Bytes()
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType := fh.Header.Get("Content-Type")

	if ext != ".gif" && contentType != "image/gif" {
		if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
			encoded := new(bytes.Buffer)
			if err := webp.Encode(encoded, img, &webp.Options{Quality: 80}); err == nil {
				data = encoded.Bytes()
				ext = ".webp"
				contentType = "image/webp"
			}
		}
		// gagal decode → simpan byte asli dengan ekstensi asli
	}

	name := uniqueObjectName(folder, fh.Filename, ext)

	if ossBucket != nil {
		if err := ossBucket.PutObject(name, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
			return "", fmt.Errorf("upload OSS gagal: %w", err)
		}
		return fmt.Sprintf("https://%s.%s/%s", ossName, ossEndpoint, name), nil
	}

	dst := filepath.Join(LocalDir(), filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat direktori storage: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menulis file storage: %w", err)
	}
	return "/storage/" + name, nil
}

// Delete menghapus gambar tersimpan (best-effort; error hanya dicatat).
func Delete(stored string) {
	if stored == "" {
		return
	}
	switch {
	case strings.HasPrefix(stored, "https://") || strings.HasPrefix(stored, "http://"):
		if ossBucket == nil {
			return
		}
		key := ossObjectKey(stored)
		if key == "" {
			return
		}
		if err := ossBucket.DeleteObject(key); err != nil {
			log.Printf("[ERROR] Gagal hapus objek OSS %s: %v", key, err)
		}
	case strings.HasPrefix(stored, "/storage/"):
		rel := strings.TrimPrefix(stored, "/storage/")
		full := filepath.Join(LocalDir(), filepath.FromSlash(path.Clean(rel)))
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			log.Printf("[ERROR] Gagal hapus file lokal %s: %v", full, err)
		}
	}
}

func ossObjectKey(href string) string {
	if i := strings.IndexByte(href, '?'); i >= 0 {
		href = href[:i]
	}
	rest := strings.TrimPrefix(strings.TrimPrefix(href, "https://"), "http://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
