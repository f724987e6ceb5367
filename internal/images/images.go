// Package images отвечает за преобразование ссылок на изображения товаров:
// публичный URL для витрины и обратное извлечение ключа объекта из URL.
package images

import (
	"net/url"
	"strings"
)

// FallbackImage — статическая заглушка для отсутствующих изображений.
const FallbackImage = "/placeholder.svg"

// ResolveURL возвращает публичный URL изображения.
// Абсолютная ссылка нормализуется: хост и схема переписываются на текущий
// публичный адрес хранилища (защита от устаревших хостов в старых строках).
// Относительный путь разворачивается в публичную схему бакета с
// процентным кодированием каждого сегмента.
// Пустая или неразбираемая ссылка заменяется заглушкой.
func ResolveURL(publicBase, bucket, imageRef string) string {
	ref := strings.TrimSpace(imageRef)
	if ref == "" {
		return FallbackImage
	}

	base, err := url.Parse(strings.TrimRight(publicBase, "/"))
	if err != nil || base.Host == "" {
		return FallbackImage
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		candidate, err := url.Parse(ref)
		if err != nil {
			return FallbackImage
		}

		if candidate.Host != base.Host {
			candidate.Host = base.Host
			candidate.Scheme = base.Scheme
		}

		return candidate.String()
	}

	trimmed := strings.TrimLeft(ref, "/")
	segments := strings.Split(trimmed, "/")
	encoded := make([]string, 0, len(segments))
	for _, segment := range segments {
		encoded = append(encoded, url.PathEscape(segment))
	}

	return base.String() + "/" + bucket + "/" + strings.Join(encoded, "/")
}

// ExtractStoragePath извлекает ключ объекта из публичного URL изображения.
// Возвращает пустую строку, если URL не указывает внутрь бакета:
// это не ошибка, у товара просто нет управляемого нами изображения.
func ExtractStoragePath(publicBase, bucket, imageURL string) string {
	ref := strings.TrimSpace(imageURL)
	if ref == "" {
		return ""
	}

	marker := "/" + bucket + "/"

	candidate, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	path := candidate.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	idx := strings.Index(path, marker)
	if idx == -1 {
		return ""
	}

	escaped := path[idx+len(marker):]
	if escaped == "" {
		return ""
	}

	decoded := make([]string, 0, 4)
	for _, segment := range strings.Split(escaped, "/") {
		s, err := url.PathUnescape(segment)
		if err != nil {
			return ""
		}
		decoded = append(decoded, s)
	}

	return strings.Join(decoded, "/")
}
